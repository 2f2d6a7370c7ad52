package errors

import (
	"errors"
	"fmt"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния.
	ErrConflict = errors.New("resource state conflict")

	// ErrUniquenessViolation означает, что запись нарушила ограничение уникальности
	// (например, второй правильный вариант ответа у одного вопроса).
	ErrUniquenessViolation = fmt.Errorf("uniqueness violation: %w", ErrConflict)
)

// FieldError привязывает ошибку к конкретному полю запроса.
// errors.Is видит обёрнутую ошибку, поэтому FieldError{Err: ErrValidation}
// обрабатывается так же, как ErrValidation.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewValidationError создает ошибку валидации поля.
func NewValidationError(field, message string) error {
	return &FieldError{Field: field, Message: message, Err: ErrValidation}
}

// NewUniquenessError создает ошибку нарушения уникальности для поля.
func NewUniquenessError(field, message string) error {
	return &FieldError{Field: field, Message: message, Err: ErrUniquenessViolation}
}

// NewReferenceError создает ошибку ссылки на несуществующую родительскую запись.
func NewReferenceError(field string, id uint) error {
	return &FieldError{Field: field, Message: fmt.Sprintf("object with id %d does not exist", id), Err: ErrNotFound}
}

// FieldOf возвращает имя поля, если ошибка содержит FieldError.
func FieldOf(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
