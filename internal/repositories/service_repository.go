package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "barbershop/internal/config"
	"barbershop/internal/domain"
	"barbershop/internal/domain/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

func (r ServiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns catalog services ordered by category then name; that order is
// what the quote builder and the fallback tie-break rely on.
func (r ServiceRepository) List(activeOnly bool) ([]models.Service, error) {
	query := `
		SELECT id, name, price, duration_minutes, buffer_minutes, COALESCE(category, ''), active
		FROM services`
	if activeOnly {
		query += `
		WHERE active = TRUE`
	}
	query += `
		ORDER BY category, name, id`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Duration, &s.Buffer, &s.Category, &s.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ServiceRepository) GetByID(id int64) (models.Service, error) {
	var s models.Service
	err := r.db().QueryRow(`
		SELECT id, name, price, duration_minutes, buffer_minutes, COALESCE(category, ''), active
		FROM services
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Price, &s.Duration, &s.Buffer, &s.Category, &s.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.NotFoundError{Resource: "servicio"}
	}
	if err != nil {
		return s, domain.InternalError{Err: err}
	}
	return s, nil
}

func (r ServiceRepository) Create(s models.Service) (int64, error) {
	if strings.TrimSpace(s.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "nombre requerido"}
	}
	if s.Duration <= 0 {
		return 0, domain.ValidationError{Field: "duration_minutes", Msg: "duración debe ser positiva"}
	}
	var id int64
	err := r.db().QueryRow(`
		INSERT INTO services (name, price, duration_minutes, buffer_minutes, category, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, strings.TrimSpace(s.Name), s.Price, s.Duration, s.Buffer, s.Category, s.Active).Scan(&id)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

func (r ServiceRepository) Update(s models.Service) error {
	if s.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	res, err := r.db().Exec(`
		UPDATE services
		SET name = $1, price = $2, duration_minutes = $3, buffer_minutes = $4, category = $5, active = $6
		WHERE id = $7
	`, strings.TrimSpace(s.Name), s.Price, s.Duration, s.Buffer, s.Category, s.Active, s.ID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "servicio"}
	}
	return nil
}

// Delete deactivates rather than removes; historical bookings keep their
// service lines intact.
func (r ServiceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`UPDATE services SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "servicio"}
	}
	return nil
}
