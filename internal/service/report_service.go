package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"library-lending/internal/domain"
	"library-lending/internal/repository"
	customError "library-lending/pkg/errors"
	"library-lending/pkg/utils"
)

// ReportService derives overdue views from borrow records. All of its
// operations are read-only; the displayed fines are live projections and are
// never posted to the ledger here.
type ReportService struct {
	borrowRepo repository.BorrowRepository
	policy     domain.Policy

	now func() time.Time
}

func NewReportService(borrowRepo repository.BorrowRepository, policy domain.Policy) *ReportService {
	return &ReportService{
		borrowRepo: borrowRepo,
		policy:     policy,
		now:        time.Now,
	}
}

// OverdueItems filters the borrower's active records down to those past due.
func (s *ReportService) OverdueItems(borrower *domain.Borrower) []*domain.BorrowRecord {
	now := s.now()
	var overdue []*domain.BorrowRecord
	for _, rec := range borrower.Active {
		if rec.OverdueAt(now) {
			overdue = append(overdue, rec)
		}
	}
	return overdue
}

// GenerateOverdueReport renders one line per overdue item with the fine the
// borrower would owe if it were returned now, plus a total line.
func (s *ReportService) GenerateOverdueReport(borrower *domain.Borrower) string {
	overdue := s.OverdueItems(borrower)
	if len(overdue) == 0 {
		return "No overdue items."
	}

	now := s.now()
	total := decimal.Zero

	var sb strings.Builder
	for _, rec := range overdue {
		days := rec.OverdueDaysAt(now)
		fine := utils.CalculateFine(days, s.policy.FinePerDay(rec.Kind))
		total = total.Add(fine)
		fmt.Fprintf(&sb, "%s (%s): %d day(s) overdue, fine %s\n",
			rec.Title, rec.Kind, days, utils.FormatMoney(fine))
	}
	fmt.Fprintf(&sb, "Total fine due: %s", utils.FormatMoney(total))

	return sb.String()
}

// UsersWithOverdueMedia lists every user currently holding overdue items with
// their counts, as consumed by the reminder job.
func (s *ReportService) UsersWithOverdueMedia(ctx context.Context) ([]*domain.OverdueUser, error) {
	users, err := s.borrowRepo.UsersWithOverdue(ctx, utils.DateOnly(s.now()))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return users, nil
}
