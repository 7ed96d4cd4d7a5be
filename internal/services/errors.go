package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Error kinds. Match with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
	ErrTooManyAttempts   = errors.New("too many attempts")
)

// DomainError is a business rule failure whose Message is safe to show to clients.
type DomainError struct {
	Kind    error
	Message string
	Details map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func newDomainError(kind error, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) error {
	return newDomainError(ErrNotFound, format, args...)
}

func ConflictError(format string, args ...any) error {
	return newDomainError(ErrConflict, format, args...)
}

func InsufficientFundsError(format string, args ...any) error {
	return newDomainError(ErrInsufficientFunds, format, args...)
}

func UnauthorizedError(format string, args ...any) error {
	return newDomainError(ErrUnauthorized, format, args...)
}

func ForbiddenError(format string, args ...any) error {
	return newDomainError(ErrForbidden, format, args...)
}

func ValidationError(format string, args ...any) error {
	return newDomainError(ErrValidation, format, args...)
}

func TooManyAttemptsError(format string, args ...any) error {
	return newDomainError(ErrTooManyAttempts, format, args...)
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

func isUniqueViolation(err error) bool {
	return isPQError(err, pqUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPQError(err, pqForeignKeyViolation)
}
