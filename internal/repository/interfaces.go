package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"library-lending/internal/domain"
)

// MediaRepository defines the interface for catalog data operations
type MediaRepository interface {
	// Insert creates a new media row and assigns its id
	Insert(ctx context.Context, media *domain.Media) error

	// FindByID retrieves a media item by id
	FindByID(ctx context.Context, id int64) (*domain.Media, error)

	// List returns the whole catalog ordered by id
	List(ctx context.Context) ([]*domain.Media, error)

	// SetAvailability updates the availability flag of a media item
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// BorrowRepository defines the interface for borrow record operations
type BorrowRepository interface {
	// Borrow inserts the record and flips the media to unavailable in one
	// transaction; it fails without any change when the media is already
	// held. Assigns the record id on success.
	Borrow(ctx context.Context, rec *domain.BorrowRecord) error

	// MarkReturned closes a record: returned flag, return date and the fine
	// computed at return time.
	MarkReturned(ctx context.Context, recordID int64, returnDate time.Time, fine decimal.Decimal) error

	// FindActiveByUser retrieves the unreturned records of one borrower
	FindActiveByUser(ctx context.Context, userID int64) ([]*domain.BorrowRecord, error)

	// FindActiveByMedia retrieves the unreturned records referencing a media item
	FindActiveByMedia(ctx context.Context, mediaID int64) ([]*domain.BorrowRecord, error)

	// UsersWithOverdue lists users holding records past due at the given date,
	// with their overdue item counts.
	UsersWithOverdue(ctx context.Context, now time.Time) ([]*domain.OverdueUser, error)
}

// FineRepository defines the interface for fine ledger rows
type FineRepository interface {
	// Get reads a borrower's total fine; sql.ErrNoRows when no row exists
	Get(ctx context.Context, userID int64) (decimal.Decimal, error)

	// Create inserts a ledger row for the borrower
	Create(ctx context.Context, userID int64, amount decimal.Decimal) error

	// Update overwrites the borrower's total fine and reports rows affected
	Update(ctx context.Context, userID int64, amount decimal.Decimal) (int64, error)
}

// UserRepository defines the interface for account data operations
type UserRepository interface {
	// Insert creates a new user and assigns its id
	Insert(ctx context.Context, user *domain.User) error

	// FindByID retrieves a user by id
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// FindByUsername retrieves a user by username
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
