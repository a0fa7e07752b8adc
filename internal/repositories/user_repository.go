package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	"backend/internal/domain"
)

// AuthUser is the users row needed for login and token claims.
type AuthUser struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
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

// GetByLogin looks a user up by email or username.
func (r UserRepository) GetByLogin(login string) (AuthUser, error) {
	var u AuthUser
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(name,''),
		       COALESCE(username,''),
		       COALESCE(email,''),
		       COALESCE(role,''),
		       COALESCE(status,''),
		       COALESCE(password_hash,'')
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Role,
		&u.Status,
		&u.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return AuthUser{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return AuthUser{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
