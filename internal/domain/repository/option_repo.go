package repository

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// OptionFilters фильтры списка вариантов
type OptionFilters struct {
	QuestionID *uint
}

// OptionRepository определяет методы для работы с вариантами ответа.
// Create и Update атомарно проверяют, что у вопроса не больше одного правильного варианта,
// и возвращают ErrCorrectOptionExists при нарушении.
type OptionRepository interface {
	Create(ctx context.Context, option *entity.Option) error
	GetByID(ctx context.Context, id uint) (*entity.Option, error)
	List(ctx context.Context, filters OptionFilters) ([]entity.Option, error)
	Update(ctx context.Context, option *entity.Option) error
	Delete(ctx context.Context, id uint) error
}
