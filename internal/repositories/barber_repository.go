package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "barbershop/internal/config"
	"barbershop/internal/domain"
	"barbershop/internal/domain/models"
)

type BarberRepository struct {
	DB *sql.DB
}

func (r BarberRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BarberRepository) List(activeOnly bool) ([]models.Barber, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), commission_rate, active
		FROM barbers`
	if activeOnly {
		query += `
		WHERE active = TRUE`
	}
	query += `
		ORDER BY name, id`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Barber{}
	for rows.Next() {
		var b models.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.CommissionRate, &b.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BarberRepository) GetByID(id int64) (models.Barber, error) {
	var b models.Barber
	err := r.db().QueryRow(`
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), commission_rate, active
		FROM barbers
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.CommissionRate, &b.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "barbero"}
	}
	if err != nil {
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r BarberRepository) Create(b models.Barber) (int64, error) {
	if strings.TrimSpace(b.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "nombre requerido"}
	}
	if b.CommissionRate < 0 || b.CommissionRate > 1 {
		return 0, domain.ValidationError{Field: "commission_rate", Msg: "debe estar entre 0 y 1"}
	}
	var id int64
	err := r.db().QueryRow(`
		INSERT INTO barbers (name, phone, email, commission_rate, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, strings.TrimSpace(b.Name), b.Phone, b.Email, b.CommissionRate, b.Active).Scan(&id)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

func (r BarberRepository) Update(b models.Barber) error {
	if b.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	if b.CommissionRate < 0 || b.CommissionRate > 1 {
		return domain.ValidationError{Field: "commission_rate", Msg: "debe estar entre 0 y 1"}
	}
	res, err := r.db().Exec(`
		UPDATE barbers
		SET name = $1, phone = $2, email = $3, commission_rate = $4, active = $5
		WHERE id = $6
	`, strings.TrimSpace(b.Name), b.Phone, b.Email, b.CommissionRate, b.Active, b.ID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "barbero"}
	}
	return nil
}

func (r BarberRepository) Delete(id int64) error {
	res, err := r.db().Exec(`UPDATE barbers SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "barbero"}
	}
	return nil
}

// ListWorkingHours returns the weekly schedule blocks for a barber.
func (r BarberRepository) ListWorkingHours(barberID int64) ([]models.WorkingHours, error) {
	rows, err := r.db().Query(`
		SELECT id, barber_id, weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), active
		FROM working_hours
		WHERE barber_id = $1
		ORDER BY weekday, start_time
	`, barberID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.WorkingHours{}
	for rows.Next() {
		var wh models.WorkingHours
		if err := rows.Scan(&wh.ID, &wh.BarberID, &wh.Weekday, &wh.Start, &wh.End, &wh.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, wh)
	}
	return out, rows.Err()
}

// ReplaceWorkingHours swaps the whole weekly schedule in one transaction.
func (r BarberRepository) ReplaceWorkingHours(barberID int64, hours []models.WorkingHours) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM working_hours WHERE barber_id = $1`, barberID); err != nil {
		return domain.InternalError{Err: err}
	}
	for _, wh := range hours {
		if wh.Weekday < 0 || wh.Weekday > 6 {
			return domain.ValidationError{Field: "weekday", Msg: "debe estar entre 0 y 6"}
		}
		if _, err := tx.Exec(`
			INSERT INTO working_hours (barber_id, weekday, start_time, end_time, active)
			VALUES ($1, $2, $3, $4, $5)
		`, barberID, wh.Weekday, wh.Start, wh.End, wh.Active); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
