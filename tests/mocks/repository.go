package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"library-lending/internal/domain"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Insert(ctx context.Context, media *domain.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByID(ctx context.Context, id int64) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *MockMediaRepository) List(ctx context.Context) ([]*domain.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Media), args.Error(1)
}

func (m *MockMediaRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockBorrowRepository struct {
	mock.Mock
}

func (m *MockBorrowRepository) Borrow(ctx context.Context, rec *domain.BorrowRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockBorrowRepository) MarkReturned(ctx context.Context, recordID int64, returnDate time.Time, fine decimal.Decimal) error {
	args := m.Called(ctx, recordID, returnDate, fine)
	return args.Error(0)
}

func (m *MockBorrowRepository) FindActiveByUser(ctx context.Context, userID int64) ([]*domain.BorrowRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BorrowRecord), args.Error(1)
}

func (m *MockBorrowRepository) FindActiveByMedia(ctx context.Context, mediaID int64) ([]*domain.BorrowRecord, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BorrowRecord), args.Error(1)
}

func (m *MockBorrowRepository) UsersWithOverdue(ctx context.Context, now time.Time) ([]*domain.OverdueUser, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OverdueUser), args.Error(1)
}

type MockFineRepository struct {
	mock.Mock
}

func (m *MockFineRepository) Get(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFineRepository) Create(ctx context.Context, userID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockFineRepository) Update(ctx context.Context, userID int64, amount decimal.Decimal) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
