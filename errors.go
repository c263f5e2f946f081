package todostore

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateID        = "DUPLICATE_ID"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// StoreError represents a failure raised by a store backend
type StoreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	ID      *uint  `json:"id,omitempty"`
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("[%s] %s (id: %d)", e.Code, e.Message, *e.ID)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewNotFoundError reports that no record with the given identifier exists
func NewNotFoundError(id uint) *StoreError {
	return &StoreError{
		Code:    ErrCodeNotFound,
		Message: "todo not found",
		ID:      &id,
	}
}

// NewDuplicateIDError reports an insert that collided with an existing identifier
func NewDuplicateIDError(id uint) *StoreError {
	return &StoreError{
		Code:    ErrCodeDuplicateID,
		Message: "todo already exists",
		ID:      &id,
	}
}

// NewStorageUnavailableError reports an unreachable or corrupt backend.
// Fatal at startup: schema initialization must succeed before serving.
func NewStorageUnavailableError(msg string) *StoreError {
	return &StoreError{
		Code:    ErrCodeStorageUnavailable,
		Message: msg,
	}
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeNotFound
}

// IsDuplicateID checks if an error is a duplicate-identifier error
func IsDuplicateID(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeDuplicateID
}
