package repository

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// QuestionFilters фильтры списка вопросов
type QuestionFilters struct {
	QuizID *uint
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create создает вопрос и переданные вместе с ним варианты в одной транзакции
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	List(ctx context.Context, filters QuestionFilters) ([]entity.Question, error)
	// Update обновляет текст вопроса и его викторину; варианты не затрагиваются
	Update(ctx context.Context, question *entity.Question) error
	// Delete удаляет вопрос вместе со всеми вариантами
	Delete(ctx context.Context, id uint) error
}
