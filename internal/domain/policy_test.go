package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, 28, policy.BorrowPeriodDays(KindBook))
	assert.True(t, policy.FinePerDay(KindBook).Equal(decimal.NewFromFloat(10.0)))

	assert.Equal(t, 7, policy.BorrowPeriodDays(KindCD))
	assert.True(t, policy.FinePerDay(KindCD).Equal(decimal.NewFromFloat(20.0)))
}

func TestPolicyUnknownKind(t *testing.T) {
	policy := DefaultPolicy()

	// Unknown kinds fall back to zero values rather than failing.
	assert.Equal(t, 0, policy.BorrowPeriodDays(MediaKind("vhs")))
	assert.True(t, policy.FinePerDay(MediaKind("vhs")).IsZero())
}
