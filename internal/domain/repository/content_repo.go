package repository

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// ClinicalCaseFilters фильтры списка клинических случаев
type ClinicalCaseFilters struct {
	SubjectID *uint
	DoctorID  *uint
}

// ClinicalCaseRepository определяет методы для работы с клиническими случаями
type ClinicalCaseRepository interface {
	Create(ctx context.Context, cc *entity.ClinicalCase) error
	GetByID(ctx context.Context, id uint) (*entity.ClinicalCase, error)
	// List возвращает случаи от новых к старым
	List(ctx context.Context, filters ClinicalCaseFilters) ([]entity.ClinicalCase, error)
	Update(ctx context.Context, cc *entity.ClinicalCase) error
	Delete(ctx context.Context, id uint) error
}

// FlashcardFilters фильтры списка карточек
type FlashcardFilters struct {
	SubjectID *uint
}

// FlashcardRepository определяет методы для работы с карточками
type FlashcardRepository interface {
	// Create создает карточку вместе с изображениями
	Create(ctx context.Context, flashcard *entity.Flashcard) error
	GetByID(ctx context.Context, id uint) (*entity.Flashcard, error)
	// List возвращает карточки от новых к старым с изображениями
	List(ctx context.Context, filters FlashcardFilters) ([]entity.Flashcard, error)
	// Update обновляет карточку; если replaceImages=true, набор изображений заменяется целиком
	Update(ctx context.Context, flashcard *entity.Flashcard, replaceImages bool) error
	Delete(ctx context.Context, id uint) error
}
