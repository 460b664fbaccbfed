package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"library-lending/internal/domain"
	customError "library-lending/pkg/errors"
)

type borrowRepository struct {
	db *sqlx.DB
}

func NewBorrowRepository(db *sqlx.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Borrow(ctx context.Context, rec *domain.BorrowRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional flip guards against double-borrowing: zero rows affected
	// means the item was no longer available.
	res, err := tx.ExecContext(ctx,
		`UPDATE media SET available = 0 WHERE id = ? AND available = 1`, rec.MediaID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return customError.ErrMediaUnavailable
	}

	query := `
		INSERT INTO borrow_records (user_id, media_id, kind, title, borrow_date, due_date, returned, fine)
		VALUES (?, ?, ?, ?, ?, ?, 0, '0')
	`

	res, err = tx.ExecContext(ctx, query,
		rec.UserID,
		rec.MediaID,
		rec.Kind,
		rec.Title,
		rec.BorrowDate,
		rec.DueDate,
	)
	if err != nil {
		return err
	}

	if rec.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *borrowRepository) MarkReturned(ctx context.Context, recordID int64, returnDate time.Time, fine decimal.Decimal) error {
	query := `
		UPDATE borrow_records
		SET returned = 1, return_date = ?, fine = ?
		WHERE id = ? AND returned = 0
	`

	res, err := r.db.ExecContext(ctx, query, returnDate, fine, recordID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return customError.ErrMediaNotBorrowed
	}
	return nil
}

func (r *borrowRepository) FindActiveByUser(ctx context.Context, userID int64) ([]*domain.BorrowRecord, error) {
	query := `
		SELECT id, user_id, media_id, kind, title, borrow_date, due_date, returned, return_date, fine
		FROM borrow_records
		WHERE user_id = ? AND returned = 0
		ORDER BY id
	`

	var records []*domain.BorrowRecord
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *borrowRepository) FindActiveByMedia(ctx context.Context, mediaID int64) ([]*domain.BorrowRecord, error) {
	query := `
		SELECT id, user_id, media_id, kind, title, borrow_date, due_date, returned, return_date, fine
		FROM borrow_records
		WHERE media_id = ? AND returned = 0
		ORDER BY id
	`

	var records []*domain.BorrowRecord
	if err := r.db.SelectContext(ctx, &records, query, mediaID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *borrowRepository) UsersWithOverdue(ctx context.Context, now time.Time) ([]*domain.OverdueUser, error) {
	query := `
		SELECT u.id AS user_id, u.username, u.email, COUNT(b.id) AS overdue_count
		FROM users u
		JOIN borrow_records b ON b.user_id = u.id
		WHERE b.returned = 0 AND b.due_date < ?
		GROUP BY u.id, u.username, u.email
		ORDER BY u.id
	`

	var users []*domain.OverdueUser
	if err := r.db.SelectContext(ctx, &users, query, now); err != nil {
		return nil, err
	}

	return users, nil
}
