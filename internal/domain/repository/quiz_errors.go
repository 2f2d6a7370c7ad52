package repository

import (
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

var (
	// ErrCorrectOptionExists означает, что у вопроса уже есть другой правильный вариант ответа.
	ErrCorrectOptionExists = apperrors.NewUniquenessError("is_correct", "question already has a correct option")
)
