package repository

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// QuizFilters определяет фильтры для поиска викторин
type QuizFilters struct {
	SubjectID *uint
	IsFree    *bool
	Search    string // Поиск по названию
}

// QuizRepository определяет методы для работы с викторинами (MCQ)
type QuizRepository interface {
	Create(ctx context.Context, quiz *entity.Quiz) error
	GetByID(ctx context.Context, id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину с вопросами и вариантами в порядке вставки
	GetWithQuestions(ctx context.Context, id uint) (*entity.Quiz, error)
	List(ctx context.Context, filters QuizFilters) ([]entity.Quiz, error)
	Update(ctx context.Context, quiz *entity.Quiz) error
	// Delete удаляет викторину, все ее вопросы и их варианты в одной транзакции
	Delete(ctx context.Context, id uint) error
}
