package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "barbershop/internal/config"
	"barbershop/internal/domain"
	"barbershop/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func (r AppointmentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// activeStatuses are the states that block a slot.
const activeStatuses = `('pendiente', 'confirmada')`

// Create inserts the appointment and its service lines in one transaction.
// The barber row is locked first so concurrent submissions for the same
// barber serialize; the overlap re-check then makes this the single place
// where the no-double-booking invariant is enforced.
func (r AppointmentRepository) Create(ctx context.Context, a models.Appointment, lines []models.AppointmentService) (int64, error) {
	tx, err := r.db().BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM barbers WHERE id = $1 FOR UPDATE`, a.BarberID).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotFoundError{Resource: "barbero"}
	}
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	var overlapping int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM appointments
		WHERE barber_id = $1
		  AND date = $2
		  AND status IN `+activeStatuses+`
		  AND start_time < ($3::time + make_interval(mins => $4))
		  AND (start_time + make_interval(mins => duration_minutes)) > $3::time
	`, a.BarberID, a.Date, a.StartTime, a.Duration).Scan(&overlapping)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if overlapping > 0 {
		return 0, domain.ConflictError{Resource: "cita", Msg: "la hora ya no está disponible"}
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO appointments
			(code, barber_id, date, start_time, duration_minutes, total_price,
			 client_name, client_phone, client_email, notes, status, walk_in, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id
	`, a.Code, a.BarberID, a.Date, a.StartTime, a.Duration, a.TotalPrice,
		a.ClientName, a.ClientPhone, a.ClientEmail, a.Notes, a.Status, a.WalkIn).Scan(&id)
	if err != nil {
		if isOverlapViolation(err) {
			return 0, domain.ConflictError{Resource: "cita", Msg: "la hora ya no está disponible"}
		}
		return 0, domain.InternalError{Err: err}
	}

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, id, l.ServiceID, l.Quantity, l.UnitPrice); err != nil {
			return 0, domain.InternalError{Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		if isOverlapViolation(err) {
			return 0, domain.ConflictError{Resource: "cita", Msg: "la hora ya no está disponible"}
		}
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// isOverlapViolation detects the no_double_booking exclusion constraint,
// the storage-level backstop behind the in-transaction re-check.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}

// BookedIntervals returns start time and blocking duration of every active
// appointment for a barber on a date; the availability provider marks slots
// against these.
func (r AppointmentRepository) BookedIntervals(ctx context.Context, barberID int64, date string) ([]models.Appointment, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, to_char(start_time, 'HH24:MI'), duration_minutes
		FROM appointments
		WHERE barber_id = $1 AND date = $2 AND status IN `+activeStatuses+`
		ORDER BY start_time
	`, barberID, date)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.StartTime, &a.Duration); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AppointmentRepository) ListByDate(date string, barberID int64) ([]models.Appointment, error) {
	query := `
		SELECT a.id, a.code, a.barber_id, b.name, a.date::text, to_char(a.start_time, 'HH24:MI'),
		       a.duration_minutes, a.total_price, a.client_name, a.client_phone,
		       COALESCE(a.client_email, ''), COALESCE(a.notes, ''), a.status,
		       COALESCE(a.cancel_reason, ''), a.walk_in
		FROM appointments a
		JOIN barbers b ON b.id = a.barber_id
		WHERE a.date = $1`
	args := []any{date}
	if barberID > 0 {
		query += ` AND a.barber_id = $2`
		args = append(args, barberID)
	}
	query += `
		ORDER BY a.start_time, a.id`

	return r.scanAppointments(query, args...)
}

func (r AppointmentRepository) ListByClientPhone(phone string) ([]models.Appointment, error) {
	return r.scanAppointments(`
		SELECT a.id, a.code, a.barber_id, b.name, a.date::text, to_char(a.start_time, 'HH24:MI'),
		       a.duration_minutes, a.total_price, a.client_name, a.client_phone,
		       COALESCE(a.client_email, ''), COALESCE(a.notes, ''), a.status,
		       COALESCE(a.cancel_reason, ''), a.walk_in
		FROM appointments a
		JOIN barbers b ON b.id = a.barber_id
		WHERE a.client_phone = $1
		ORDER BY a.date DESC, a.start_time DESC
	`, phone)
}

func (r AppointmentRepository) scanAppointments(query string, args ...any) ([]models.Appointment, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Code, &a.BarberID, &a.BarberName, &a.Date, &a.StartTime,
			&a.Duration, &a.TotalPrice, &a.ClientName, &a.ClientPhone,
			&a.ClientEmail, &a.Notes, &a.Status, &a.CancelReason, &a.WalkIn); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AppointmentRepository) GetStatus(id int64) (string, error) {
	var status string
	err := r.db().QueryRow(`SELECT status FROM appointments WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.NotFoundError{Resource: "cita"}
	}
	if err != nil {
		return "", domain.InternalError{Err: err}
	}
	return status, nil
}

func (r AppointmentRepository) SetStatus(id int64, status, cancelReason string) error {
	res, err := r.db().Exec(`
		UPDATE appointments
		SET status = $1, cancel_reason = NULLIF($2, '')
		WHERE id = $3
	`, status, cancelReason, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cita"}
	}
	return nil
}

// CompletedLines feeds settlements: completed visits per barber in a range.
func (r AppointmentRepository) CompletedLines(barberID int64, from, to string) ([]models.SettlementLine, error) {
	rows, err := r.db().Query(`
		SELECT id, date::text, to_char(start_time, 'HH24:MI'), client_name, total_price
		FROM appointments
		WHERE barber_id = $1 AND status = 'completada' AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`, barberID, from, to)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.SettlementLine{}
	for rows.Next() {
		var l models.SettlementLine
		if err := rows.Scan(&l.AppointmentID, &l.Date, &l.StartTime, &l.ClientName, &l.Total); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListClients aggregates booking history by phone. Last visit considers
// completed appointments only.
func (r AppointmentRepository) ListClients() ([]models.Client, error) {
	rows, err := r.db().Query(`
		SELECT client_phone,
		       MAX(client_name),
		       COALESCE(MAX(client_email), ''),
		       COUNT(*) FILTER (WHERE status = 'completada'),
		       COALESCE(MAX(date::text) FILTER (WHERE status = 'completada'), '')
		FROM appointments
		GROUP BY client_phone
		ORDER BY 2
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.Phone, &c.Name, &c.Email, &c.VisitCount, &c.LastVisitDate); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
