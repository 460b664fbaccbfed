package domain

import "github.com/shopspring/decimal"

// PolicyEntry is the lending rule for one media kind.
type PolicyEntry struct {
	BorrowPeriodDays int
	FinePerDay       decimal.Decimal
}

// Policy maps media kinds to their lending rules. It is built once from
// configuration and never mutated; unknown kinds fall back to zero values
// rather than erroring, since callers validate the kind upstream.
type Policy struct {
	entries map[MediaKind]PolicyEntry
}

// NewPolicy builds an immutable policy from per-kind entries.
func NewPolicy(entries map[MediaKind]PolicyEntry) Policy {
	copied := make(map[MediaKind]PolicyEntry, len(entries))
	for kind, entry := range entries {
		copied[kind] = entry
	}
	return Policy{entries: copied}
}

// DefaultPolicy returns the standard library rules: books lend for 28 days at
// 10.00 per overdue day, CDs for 7 days at 20.00 per overdue day.
func DefaultPolicy() Policy {
	return NewPolicy(map[MediaKind]PolicyEntry{
		KindBook: {BorrowPeriodDays: 28, FinePerDay: decimal.NewFromFloat(10.0)},
		KindCD:   {BorrowPeriodDays: 7, FinePerDay: decimal.NewFromFloat(20.0)},
	})
}

// BorrowPeriodDays returns the lending period for kind, 0 when unknown.
func (p Policy) BorrowPeriodDays(kind MediaKind) int {
	return p.entries[kind].BorrowPeriodDays
}

// FinePerDay returns the overdue rate for kind, 0 when unknown.
func (p Policy) FinePerDay(kind MediaKind) decimal.Decimal {
	entry, ok := p.entries[kind]
	if !ok {
		return decimal.Zero
	}
	return entry.FinePerDay
}
