package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrForbidden is returned when the caller is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// ValidationError is bad or duplicate input.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError is a missing entity referenced by a business key.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

// AuthenticationError is a missing or invalid credential.
type AuthenticationError struct{ Msg string }

func (e *AuthenticationError) Error() string { return e.Msg }

// IntegrityFault means stored rows reference each other inconsistently,
// e.g. an order line whose product is gone. It is never the caller's fault.
type IntegrityFault struct {
	Msg string
	Err error
}

func (e *IntegrityFault) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *IntegrityFault) Unwrap() error { return e.Err }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// notFoundOr turns gorm's record-not-found into a NotFoundError and passes
// every other error through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Msg: msg}
	}
	return err
}

// danglingRef turns record-not-found for a referenced row into an IntegrityFault.
func danglingRef(err error, what string, id, lineID uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &IntegrityFault{
			Msg: fmt.Sprintf("order line %d references missing %s %d", lineID, what, id),
			Err: err,
		}
	}
	return err
}
