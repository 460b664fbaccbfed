package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"library-lending/internal/domain"
	"library-lending/internal/repository"
	customError "library-lending/pkg/errors"
	"library-lending/pkg/utils"
)

// LendingService orchestrates the borrow and return lifecycle: it checks the
// borrowing preconditions, moves catalog availability, creates and closes
// borrow records and posts overdue fines to the ledger.
type LendingService struct {
	mediaRepo  repository.MediaRepository
	borrowRepo repository.BorrowRepository
	ledger     *FineLedger
	policy     domain.Policy

	now func() time.Time
}

func NewLendingService(
	mediaRepo repository.MediaRepository,
	borrowRepo repository.BorrowRepository,
	ledger *FineLedger,
	policy domain.Policy,
) *LendingService {
	return &LendingService{
		mediaRepo:  mediaRepo,
		borrowRepo: borrowRepo,
		ledger:     ledger,
		policy:     policy,
		now:        time.Now,
	}
}

// Ledger exposes the fine ledger for payment operations.
func (s *LendingService) Ledger() *FineLedger {
	return s.ledger
}

// Borrow lends a media item to the borrower. Preconditions are checked in
// order and the first failure returns without mutating anything: the session
// must be authenticated, the fine balance must be zero, no active record may
// be overdue and the item must be available. The record insert and the
// availability flip run in one storage transaction, so a failed borrow never
// leaves an item marked unavailable with no record of who holds it.
func (s *LendingService) Borrow(ctx context.Context, borrower *domain.Borrower, mediaID int64) error {
	if !borrower.LoggedIn() {
		return customError.WrapNotLoggedIn()
	}

	now := s.now()

	balance, err := s.ledger.Balance(ctx, borrower.User.ID)
	if err != nil {
		return err
	}
	borrower.FineBalance = balance
	if balance.GreaterThan(decimal.Zero) {
		return customError.WrapOutstandingFine(utils.FormatMoney(balance))
	}

	if borrower.HasOverdueAt(now) {
		overdue := 0
		for _, rec := range borrower.Active {
			if rec.OverdueAt(now) {
				overdue++
			}
		}
		return customError.WrapOverdueItems(overdue)
	}

	media, err := s.mediaRepo.FindByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapMediaNotFound(mediaID)
		}
		return customError.WrapDatabaseError(err)
	}
	if !media.Available {
		return customError.WrapMediaUnavailable(media.Title)
	}

	borrowDate := utils.DateOnly(now)
	rec := &domain.BorrowRecord{
		UserID:     borrower.User.ID,
		MediaID:    media.ID,
		Kind:       media.Kind,
		Title:      media.Title,
		BorrowDate: borrowDate,
		DueDate:    utils.CalculateDueDate(borrowDate, s.policy.BorrowPeriodDays(media.Kind)),
		Fine:       decimal.Zero,
	}

	if err := s.borrowRepo.Borrow(ctx, rec); err != nil {
		if errors.Is(err, customError.ErrMediaUnavailable) {
			return customError.WrapMediaUnavailable(media.Title)
		}
		return customError.WrapDatabaseError(err)
	}

	// Storage committed; bring the in-memory views in line.
	media.Available = false
	borrower.Active = append(borrower.Active, rec)
	return nil
}

// Return closes the borrower's loan of the given media item. The active
// record is matched by exact media id. The returned state is only reflected
// in the session, and a fine only posted, once the record persists as
// returned; a failed write reverts the availability flip and leaves the
// record active. A record that storage already holds as returned, which
// happens when a prior attempt persisted the close but failed afterwards,
// is dropped from the session without touching availability.
func (s *LendingService) Return(ctx context.Context, borrower *domain.Borrower, mediaID int64) error {
	if !borrower.LoggedIn() {
		return customError.WrapNotLoggedIn()
	}

	rec := borrower.ActiveRecordForMedia(mediaID)
	if rec == nil {
		return customError.WrapMediaNotBorrowed(mediaID)
	}

	now := s.now()

	if err := s.mediaRepo.SetAvailability(ctx, mediaID, true); err != nil {
		return customError.WrapDatabaseError(err)
	}

	fine := utils.CalculateFine(rec.OverdueDaysAt(now), s.policy.FinePerDay(rec.Kind))
	returnDate := utils.DateOnly(now)

	if err := s.borrowRepo.MarkReturned(ctx, rec.ID, returnDate, fine); err != nil {
		if errors.Is(err, customError.ErrMediaNotBorrowed) {
			// Storage already has the record closed, so the item is
			// genuinely back on the shelf. Sync the session instead of
			// reverting; any fine was posted by the attempt that closed it.
			borrower.RemoveActive(rec.ID)
			if balance, err := s.ledger.Balance(ctx, borrower.User.ID); err == nil {
				borrower.FineBalance = balance
			}
			return nil
		}
		if revertErr := s.mediaRepo.SetAvailability(ctx, mediaID, false); revertErr != nil {
			log.Printf("return: could not revert availability of media %d: %v", mediaID, revertErr)
		}
		return customError.WrapDatabaseError(err)
	}

	rec.Returned = true
	rec.ReturnDate = &returnDate
	rec.Fine = fine
	borrower.RemoveActive(rec.ID)

	if fine.GreaterThan(decimal.Zero) {
		if err := s.ledger.Add(ctx, borrower.User.ID, fine); err != nil {
			return err
		}
		if balance, err := s.ledger.Balance(ctx, borrower.User.ID); err == nil {
			borrower.FineBalance = balance
		}
	}

	return nil
}

// PayFine pays down the borrower's fine balance and refreshes the cached
// balance on success.
func (s *LendingService) PayFine(ctx context.Context, borrower *domain.Borrower, amount decimal.Decimal) error {
	if !borrower.LoggedIn() {
		return customError.WrapNotLoggedIn()
	}

	if err := s.ledger.Pay(ctx, borrower.User.ID, amount); err != nil {
		return err
	}

	if balance, err := s.ledger.Balance(ctx, borrower.User.ID); err == nil {
		borrower.FineBalance = balance
	}
	return nil
}

// LoadBorrowerState reads the borrower's active records and fine balance from
// storage, for session start and post-mutation refreshes.
func (s *LendingService) LoadBorrowerState(ctx context.Context, userID int64) (*domain.BorrowerState, error) {
	active, err := s.borrowRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.BorrowerState{Active: active, FineBalance: balance}, nil
}
