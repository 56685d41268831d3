package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"campusparking/internal/db"
	apperrors "campusparking/internal/errors"

	"github.com/lib/pq"
)

type UserRepository interface {
	CreateUser(u *db.User) error
	GetByEmail(email string) (*db.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *db.User) error {
	query := `INSERT INTO users (name, email, password_hash, is_user)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, u.Name, u.Email, u.PasswordHash, u.IsUser).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	query := `SELECT id, name, email, password_hash, is_user, created_at FROM users WHERE email = $1`
	err := r.db.QueryRow(query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsUser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}
