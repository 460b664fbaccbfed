package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"library-lending/internal/domain"
	customError "library-lending/pkg/errors"
	"library-lending/tests/mocks"
)

func newTestAuth(
	userRepo *mocks.MockUserRepository,
	borrowRepo *mocks.MockBorrowRepository,
	fineRepo *mocks.MockFineRepository,
) *AuthService {
	lending := newTestLending(&mocks.MockMediaRepository{}, borrowRepo, fineRepo)
	return NewAuthService(userRepo, lending)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		request       *domain.RegisterRequest
		setupMocks    func(*mocks.MockUserRepository)
		expectedError bool
		errorIs       error
	}{
		{
			name:    "success",
			request: &domain.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "correcthorse"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, sql.ErrNoRows)
				userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Username == "alice" && u.PasswordHash != "" && u.PasswordHash != "correcthorse"
				})).Return(nil)
			},
		},
		{
			name:    "failure - username taken",
			request: &domain.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "correcthorse"},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByUsername", mock.Anything, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: true,
			errorIs:       customError.ErrUserAlreadyExists,
		},
		{
			name:          "failure - bad email",
			request:       &domain.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "correcthorse"},
			setupMocks:    func(*mocks.MockUserRepository) {},
			expectedError: true,
		},
		{
			name:          "failure - short password",
			request:       &domain.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short"},
			setupMocks:    func(*mocks.MockUserRepository) {},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mocks.MockUserRepository{}
			tt.setupMocks(userRepo)

			auth := newTestAuth(userRepo, &mocks.MockBorrowRepository{}, &mocks.MockFineRepository{})
			user, err := auth.Register(context.Background(), tt.request)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				// The stored hash verifies against the original password.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.request.Password)))
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}

	t.Run("success loads borrower state", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		borrowRepo := &mocks.MockBorrowRepository{}
		fineRepo := &mocks.MockFineRepository{}

		active := []*domain.BorrowRecord{
			activeRecord(42, 7, domain.KindBook, "Animal Farm", testToday().AddDate(0, 0, 10)),
		}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
		borrowRepo.On("FindActiveByUser", mock.Anything, int64(1)).Return(active, nil)
		fineRepo.On("Get", mock.Anything, int64(1)).Return(decimal.NewFromFloat(12.5), nil)

		auth := newTestAuth(userRepo, borrowRepo, fineRepo)
		borrower, err := auth.Login(context.Background(), "alice", "correcthorse")

		require.NoError(t, err)
		assert.True(t, borrower.LoggedIn())
		assert.NotEmpty(t, borrower.SessionToken)
		assert.Len(t, borrower.Active, 1)
		assert.True(t, borrower.FineBalance.Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

		auth := newTestAuth(userRepo, &mocks.MockBorrowRepository{}, &mocks.MockFineRepository{})
		_, err := auth.Login(context.Background(), "alice", "wrong")

		assert.ErrorIs(t, err, customError.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		userRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, sql.ErrNoRows)

		auth := newTestAuth(userRepo, &mocks.MockBorrowRepository{}, &mocks.MockFineRepository{})
		_, err := auth.Login(context.Background(), "nobody", "whatever")

		assert.ErrorIs(t, err, customError.ErrInvalidCredentials)
	})
}
