package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateOnly truncates a timestamp to midnight so day arithmetic is stable
// across the time of day an operation runs at.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateDueDate calculates the due date for a loan started on borrowDate
// with the given borrow period.
func CalculateDueDate(borrowDate time.Time, periodDays int) time.Time {
	return DateOnly(borrowDate).AddDate(0, 0, periodDays)
}

// DaysBetween returns the number of whole calendar days from one date to
// another, 0 when `to` is not after `from`.
func DaysBetween(from, to time.Time) int {
	days := int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// CalculateFine computes an overdue fine: days late times the per-day rate,
// rounded to 2 decimal places for currency.
func CalculateFine(overdueDays int, finePerDay decimal.Decimal) decimal.Decimal {
	if overdueDays <= 0 {
		return decimal.Zero
	}
	return finePerDay.Mul(decimal.NewFromInt(int64(overdueDays))).Round(2)
}

// FormatMoney renders a decimal amount with two fractional digits.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
