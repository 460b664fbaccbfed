package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type fineRepository struct {
	db *sqlx.DB
}

func NewFineRepository(db *sqlx.DB) FineRepository {
	return &fineRepository{db: db}
}

func (r *fineRepository) Get(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `
		SELECT total_fine
		FROM fines
		WHERE user_id = ?
	`

	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, userID); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *fineRepository) Create(ctx context.Context, userID int64, amount decimal.Decimal) error {
	query := `
		INSERT INTO fines (user_id, total_fine)
		VALUES (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, userID, amount)
	return err
}

func (r *fineRepository) Update(ctx context.Context, userID int64, amount decimal.Decimal) (int64, error) {
	query := `
		UPDATE fines
		SET total_fine = ?
		WHERE user_id = ?
	`

	res, err := r.db.ExecContext(ctx, query, amount, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
