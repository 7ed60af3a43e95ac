package repositories

import (
	"database/sql"
	"errors"

	intconfig "barbershop/internal/config"
	"barbershop/internal/domain"
)

// AdminUser is a dashboard login (admin or barber panel).
type AdminUser struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"` // admin | barber
	BarberID     int64  `json:"barber_id,omitempty"`
	PasswordHash string `json:"-"`
}

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) GetByEmail(email string) (AdminUser, error) {
	var u AdminUser
	var barberID sql.NullInt64
	err := r.db().QueryRow(`
		SELECT id, name, email, role, barber_id, password_hash
		FROM admin_users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &barberID, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "usuario"}
	}
	if err != nil {
		return u, domain.InternalError{Err: err}
	}
	if barberID.Valid {
		u.BarberID = barberID.Int64
	}
	return u, nil
}
