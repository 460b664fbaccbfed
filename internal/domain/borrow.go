package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BorrowRecord links a borrower to a media loan. Kind and title are
// denormalized from the media row so fine-rate lookups and reports do not
// need a catalog read. A record is mutated exactly once, when it is returned.
type BorrowRecord struct {
	ID         int64           `json:"id" db:"id"`
	UserID     int64           `json:"user_id" db:"user_id"`
	MediaID    int64           `json:"media_id" db:"media_id"`
	Kind       MediaKind       `json:"kind" db:"kind"`
	Title      string          `json:"title" db:"title"`
	BorrowDate time.Time       `json:"borrow_date" db:"borrow_date"`
	DueDate    time.Time       `json:"due_date" db:"due_date"`
	Returned   bool            `json:"returned" db:"returned"`
	ReturnDate *time.Time      `json:"return_date,omitempty" db:"return_date"`
	Fine       decimal.Decimal `json:"fine" db:"fine"`
}

// OverdueAt reports whether the record is overdue at the given time, i.e. the
// calendar day is strictly after the due date's day. An item due today is not
// overdue until tomorrow.
func (r *BorrowRecord) OverdueAt(now time.Time) bool {
	return dateOnly(now).After(dateOnly(r.DueDate))
}

// OverdueDaysAt returns how many whole calendar days the record is past due
// at the given time, 0 when not overdue.
func (r *BorrowRecord) OverdueDaysAt(now time.Time) int {
	if !r.OverdueAt(now) {
		return 0
	}
	return int(dateOnly(now).Sub(dateOnly(r.DueDate)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsOverdue reports overdue state against the wall clock.
func (r *BorrowRecord) IsOverdue() bool {
	return r.OverdueAt(time.Now())
}

// OverdueDays returns the overdue day count against the wall clock.
func (r *BorrowRecord) OverdueDays() int {
	return r.OverdueDaysAt(time.Now())
}
