package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDueDate(t *testing.T) {
	baseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		borrowDate time.Time
		periodDays int
		expected   time.Time
	}{
		{
			name:       "book period",
			borrowDate: baseDate,
			periodDays: 28,
			expected:   baseDate.AddDate(0, 0, 28),
		},
		{
			name:       "cd period",
			borrowDate: baseDate,
			periodDays: 7,
			expected:   baseDate.AddDate(0, 0, 7),
		},
		{
			name:       "time of day is dropped",
			borrowDate: baseDate.Add(17 * time.Hour),
			periodDays: 7,
			expected:   baseDate.AddDate(0, 0, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDueDate(tt.borrowDate, tt.periodDays)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	baseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "same day",
			from:     baseDate,
			to:       baseDate,
			expected: 0,
		},
		{
			name:     "five days later",
			from:     baseDate,
			to:       baseDate.AddDate(0, 0, 5),
			expected: 5,
		},
		{
			name:     "partial day does not count",
			from:     baseDate,
			to:       baseDate.AddDate(0, 0, 3).Add(9 * time.Hour),
			expected: 3,
		},
		{
			name:     "to before from clamps to zero",
			from:     baseDate,
			to:       baseDate.AddDate(0, 0, -2),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DaysBetween(tt.from, tt.to)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCalculateFine(t *testing.T) {
	tests := []struct {
		name        string
		overdueDays int
		finePerDay  decimal.Decimal
		expected    decimal.Decimal
	}{
		{
			name:        "five days late on a cd",
			overdueDays: 5,
			finePerDay:  decimal.NewFromFloat(20.0),
			expected:    decimal.NewFromFloat(100.0),
		},
		{
			name:        "three days late on a book",
			overdueDays: 3,
			finePerDay:  decimal.NewFromFloat(10.0),
			expected:    decimal.NewFromFloat(30.0),
		},
		{
			name:        "not overdue",
			overdueDays: 0,
			finePerDay:  decimal.NewFromFloat(10.0),
			expected:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateFine(tt.overdueDays, tt.finePerDay)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "100.00", FormatMoney(decimal.NewFromInt(100)))
	assert.Equal(t, "12.50", FormatMoney(decimal.NewFromFloat(12.5)))
}
