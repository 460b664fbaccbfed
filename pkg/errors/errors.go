package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrOutstandingFine      = errors.New("outstanding fine must be paid first")
	ErrOverdueItems         = errors.New("overdue items must be returned first")
	ErrMediaNotFound        = errors.New("media not found")
	ErrMediaUnavailable     = errors.New("media not available")
	ErrMediaNotBorrowed     = errors.New("media not borrowed by this user")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeNotLoggedIn          = "NOT_LOGGED_IN"
	ErrCodeOutstandingFine      = "OUTSTANDING_FINE"
	ErrCodeOverdueItems         = "OVERDUE_ITEMS"
	ErrCodeMediaNotFound        = "MEDIA_NOT_FOUND"
	ErrCodeMediaUnavailable     = "MEDIA_UNAVAILABLE"
	ErrCodeMediaNotBorrowed     = "MEDIA_NOT_BORROWED"
	ErrCodeInvalidPaymentAmount = "INVALID_PAYMENT_AMOUNT"
	ErrCodeUserAlreadyExists    = "USER_ALREADY_EXISTS"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
)

// Wrap common errors with business context
func WrapNotLoggedIn() *BusinessError {
	return NewBusinessError(
		ErrCodeNotLoggedIn,
		"You must log in before borrowing or returning media",
		ErrNotLoggedIn,
	)
}

func WrapOutstandingFine(balance string) *BusinessError {
	return NewBusinessError(
		ErrCodeOutstandingFine,
		fmt.Sprintf("Pay your fine of %s before borrowing more media", balance),
		ErrOutstandingFine,
	)
}

func WrapOverdueItems(count int) *BusinessError {
	return NewBusinessError(
		ErrCodeOverdueItems,
		fmt.Sprintf("You must return %d overdue item(s) before borrowing more media", count),
		ErrOverdueItems,
	)
}

func WrapMediaNotFound(mediaID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeMediaNotFound,
		fmt.Sprintf("Media with ID %d not found", mediaID),
		ErrMediaNotFound,
	)
}

func WrapMediaUnavailable(title string) *BusinessError {
	return NewBusinessError(
		ErrCodeMediaUnavailable,
		fmt.Sprintf("%q is not available", title),
		ErrMediaUnavailable,
	)
}

func WrapMediaNotBorrowed(mediaID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeMediaNotBorrowed,
		fmt.Sprintf("No active borrow record for media %d", mediaID),
		ErrMediaNotBorrowed,
	)
}

func WrapInvalidPaymentAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPaymentAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount),
		ErrInvalidPaymentAmount,
	)
}

func WrapUserAlreadyExists(username string) *BusinessError {
	return NewBusinessError(
		ErrCodeUserAlreadyExists,
		fmt.Sprintf("User %s already exists", username),
		ErrUserAlreadyExists,
	)
}

func WrapInvalidCredentials() *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidCredentials,
		"Invalid username or password",
		ErrInvalidCredentials,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}
