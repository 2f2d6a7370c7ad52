package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniquenessViolation_IsConflict(t *testing.T) {
	assert.True(t, errors.Is(ErrUniquenessViolation, ErrConflict))
	assert.False(t, errors.Is(ErrConflict, ErrUniquenessViolation))
}

func TestFieldError_WrapsSentinel(t *testing.T) {
	err := NewUniquenessError("is_correct", "question already has a correct option")

	assert.True(t, errors.Is(err, ErrUniquenessViolation))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "is_correct: question already has a correct option", err.Error())

	field, ok := FieldOf(err)
	assert.True(t, ok)
	assert.Equal(t, "is_correct", field)
}

func TestFieldOf_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create option: %w", NewValidationError("text", "this field may not be blank"))

	field, ok := FieldOf(wrapped)
	assert.True(t, ok, "FieldOf должен находить поле через fmt.Errorf %%w")
	assert.Equal(t, "text", field)
	assert.True(t, errors.Is(wrapped, ErrValidation))
}

func TestReferenceError_IsNotFound(t *testing.T) {
	err := NewReferenceError("question", 42)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "42")
}

func TestFieldOf_PlainError(t *testing.T) {
	_, ok := FieldOf(ErrNotFound)
	assert.False(t, ok)
}
