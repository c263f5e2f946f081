package todostore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Error(t *testing.T) {
	err := NewNotFoundError(7)
	assert.Equal(t, "[NOT_FOUND] todo not found (id: 7)", err.Error())

	bare := &StoreError{Code: ErrCodeStorageUnavailable, Message: "disk gone"}
	assert.Equal(t, "[STORAGE_UNAVAILABLE] disk gone", bare.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError(1)))
	assert.False(t, IsNotFound(NewDuplicateIDError(1)))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))

	// Classification must survive wrapping
	wrapped := fmt.Errorf("store call failed: %w", NewNotFoundError(2))
	assert.True(t, IsNotFound(wrapped))
}

func TestIsDuplicateID(t *testing.T) {
	assert.True(t, IsDuplicateID(NewDuplicateIDError(1)))
	assert.False(t, IsDuplicateID(NewNotFoundError(1)))

	wrapped := fmt.Errorf("store call failed: %w", NewDuplicateIDError(2))
	assert.True(t, IsDuplicateID(wrapped))
}
