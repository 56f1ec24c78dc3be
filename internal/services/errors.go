package services

import (
	"errors"
	"fmt"

	"github.com/societyhub/societyhub-api/internal/repository"
	"gorm.io/gorm"
)

// Common service errors. Handlers map these onto HTTP statuses; nothing
// else about a failure leaks to the caller.
var (
	ErrNotFound     = errors.New("record not found")
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidState = errors.New("invalid status transition")

	// ErrConflict aliases the repository's duplicate error so uniqueness
	// violations surface as conflicts regardless of which layer caught them.
	ErrConflict = repository.ErrDuplicate
)

// validationf wraps ErrValidation with a caller-facing message
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// asServiceError maps data-layer errors into the service taxonomy
func asServiceError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
