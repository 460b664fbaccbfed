package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"library-lending/internal/domain"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, admin, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Admin,
		user.CreatedAt,
	)
	if err != nil {
		return err
	}

	user.ID, err = res.LastInsertId()
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, admin, created_at
		FROM users
		WHERE id = ?
	`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, admin, created_at
		FROM users
		WHERE username = ?
	`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}

	return &user, nil
}
