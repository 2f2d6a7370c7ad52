package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// validate проверяет значения, которые не проходят через gin binding (PATCH, seed)
var validate = validator.New()

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

// requireText проверяет обязательное текстовое поле: задано, не пустое, не длиннее max (0 без ограничения)
func requireText(field string, value *string, max int) error {
	if value == nil {
		return apperrors.NewValidationError(field, msgRequired)
	}
	return checkText(field, *value, max)
}

// checkText проверяет непустую строку и ее длину в символах
func checkText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, msgBlank)
	}
	return checkMaxLen(field, value, max)
}

func checkMaxLen(field, value string, max int) error {
	if max > 0 && utf8.RuneCountInString(value) > max {
		return apperrors.NewValidationError(field, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
	}
	return nil
}

func requireID(field string, value *uint) error {
	if value == nil || *value == 0 {
		return apperrors.NewValidationError(field, msgRequired)
	}
	return nil
}

// checkURL допускает только абсолютные http(s) ссылки
func checkURL(field, value string, max int) error {
	if err := checkText(field, value, max); err != nil {
		return err
	}
	if err := validate.Var(value, "http_url"); err != nil {
		return apperrors.NewValidationError(field, "Enter a valid URL.")
	}
	return nil
}

// pick возвращает новое значение, если оно передано, иначе текущее
func pick[T any](next *T, current T) T {
	if next != nil {
		return *next
	}
	return current
}
