package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-lending/internal/domain"
	"library-lending/internal/repository"
	customError "library-lending/pkg/errors"
)

// AuthService registers accounts and opens borrower sessions. The lending
// engine only ever sees the authenticated Borrower this service produces.
type AuthService struct {
	userRepo  repository.UserRepository
	lending   *LendingService
	validator *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, lending *LendingService) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		lending:   lending,
		validator: validator.New(),
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, customError.WrapUserAlreadyExists(req.Username)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return user, nil
}

// Login verifies credentials and opens a session with the borrower's state
// loaded from storage. Unknown users and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Borrower, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapInvalidCredentials()
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, customError.WrapInvalidCredentials()
	}

	state, err := s.lending.LoadBorrowerState(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Borrower{
		User:         user,
		SessionToken: uuid.NewString(),
		Active:       state.Active,
		FineBalance:  state.FineBalance,
	}, nil
}
