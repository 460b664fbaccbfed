package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a registered library account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Admin        bool      `json:"admin" db:"admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Borrower is the in-memory session state for an authenticated user: a
// snapshot of active borrow records plus the cached fine balance. It is
// loaded at login and refreshed by the lending engine after each mutating
// operation; between refreshes the snapshot may lag the store.
type Borrower struct {
	User         *User
	SessionToken string
	Active       []*BorrowRecord
	FineBalance  decimal.Decimal
}

// LoggedIn reports whether the session carries an authenticated identity.
func (b *Borrower) LoggedIn() bool {
	return b != nil && b.User != nil && b.SessionToken != ""
}

// ActiveRecordForMedia returns the first active record referencing mediaID,
// or nil when the borrower does not hold that item.
func (b *Borrower) ActiveRecordForMedia(mediaID int64) *BorrowRecord {
	for _, rec := range b.Active {
		if rec.MediaID == mediaID {
			return rec
		}
	}
	return nil
}

// HasOverdueAt reports whether any active record is overdue at the given time.
func (b *Borrower) HasOverdueAt(now time.Time) bool {
	for _, rec := range b.Active {
		if rec.OverdueAt(now) {
			return true
		}
	}
	return false
}

// RemoveActive drops the record with the given id from the active snapshot.
func (b *Borrower) RemoveActive(recordID int64) {
	for i, rec := range b.Active {
		if rec.ID == recordID {
			b.Active = append(b.Active[:i], b.Active[i+1:]...)
			return
		}
	}
}

// OverdueUser is one row of the admin reminder feed.
type OverdueUser struct {
	UserID       int64  `json:"user_id" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	OverdueCount int    `json:"overdue_count" db:"overdue_count"`
}

// DTOs for registration and session loads.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type BorrowerState struct {
	Active      []*BorrowRecord `json:"active"`
	FineBalance decimal.Decimal `json:"fine_balance"`
}
