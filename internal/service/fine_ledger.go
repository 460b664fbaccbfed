package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"library-lending/internal/repository"
	customError "library-lending/pkg/errors"
	"library-lending/pkg/utils"
)

// FineLedger keeps one running balance per borrower. Rows are created lazily
// on first read, so callers never have to seed the table.
type FineLedger struct {
	fineRepo repository.FineRepository
}

func NewFineLedger(fineRepo repository.FineRepository) *FineLedger {
	return &FineLedger{fineRepo: fineRepo}
}

// Balance returns the borrower's current total fine. A missing row is created
// at zero; if that insert fails the failure is logged and zero is still
// returned, so a read never blocks the session.
func (l *FineLedger) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	total, err := l.fineRepo.Get(ctx, userID)
	if err == nil {
		return total, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, customError.WrapDatabaseError(err)
	}

	if createErr := l.fineRepo.Create(ctx, userID, decimal.Zero); createErr != nil {
		log.Printf("fine ledger: lazy create for user %d failed: %v", userID, createErr)
	}
	return decimal.Zero, nil
}

// SetBalance overwrites the borrower's total fine, creating the row when the
// update touches nothing.
func (l *FineLedger) SetBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	affected, err := l.fineRepo.Update(ctx, userID, amount)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}
	if affected == 0 {
		if err := l.fineRepo.Create(ctx, userID, amount); err != nil {
			return customError.WrapDatabaseError(err)
		}
	}
	return nil
}

// Add posts an amount on top of the current balance.
func (l *FineLedger) Add(ctx context.Context, userID int64, amount decimal.Decimal) error {
	current, err := l.Balance(ctx, userID)
	if err != nil {
		return err
	}
	return l.SetBalance(ctx, userID, current.Add(amount))
}

// Pay subtracts a payment from the balance. The payment must be positive and
// must not exceed the current balance; an invalid amount changes nothing.
func (l *FineLedger) Pay(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return customError.WrapInvalidPaymentAmount(utils.FormatMoney(amount))
	}

	current, err := l.Balance(ctx, userID)
	if err != nil {
		return err
	}
	if amount.GreaterThan(current) {
		return customError.WrapInvalidPaymentAmount(utils.FormatMoney(amount))
	}

	return l.SetBalance(ctx, userID, current.Sub(amount))
}

// Clear forces the balance to zero.
func (l *FineLedger) Clear(ctx context.Context, userID int64) error {
	return l.SetBalance(ctx, userID, decimal.Zero)
}
