package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// OptionInput данные варианта ответа. nil означает "поле не передано".
type OptionInput struct {
	QuestionID *uint
	Text       *string
	IsCorrect  *bool
}

// OptionService управляет вариантами ответа.
// Правило единственного правильного варианта обеспечивает репозиторий атомарно.
type OptionService struct {
	optionRepo repository.OptionRepository
}

// NewOptionService создает новый сервис вариантов ответа
func NewOptionService(optionRepo repository.OptionRepository) *OptionService {
	return &OptionService{optionRepo: optionRepo}
}

// CreateOption создает вариант ответа
func (s *OptionService) CreateOption(ctx context.Context, in OptionInput) (*entity.Option, error) {
	if err := requireID("question", in.QuestionID); err != nil {
		return nil, err
	}
	if err := requireText("text", in.Text, entity.MaxOptionTextLength); err != nil {
		return nil, err
	}

	option := &entity.Option{
		QuestionID: *in.QuestionID,
		Text:       *in.Text,
		IsCorrect:  pick(in.IsCorrect, false),
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		if errors.Is(err, apperrors.ErrUniquenessViolation) {
			log.Printf("[OptionService] Отклонен второй правильный вариант: %s", option)
		}
		return nil, err
	}
	return option, nil
}

// GetOption возвращает вариант по ID
func (s *OptionService) GetOption(ctx context.Context, id uint) (*entity.Option, error) {
	return s.optionRepo.GetByID(ctx, id)
}

// ListOptions возвращает варианты, опционально только для одного вопроса
func (s *OptionService) ListOptions(ctx context.Context, questionID *uint) ([]entity.Option, error) {
	return s.optionRepo.List(ctx, repository.OptionFilters{QuestionID: questionID})
}

// UpdateOption обновляет вариант. При partial=false поля question и text обязательны;
// не переданные необязательные поля сохраняют текущие значения.
// Если обновление нарушает правило единственного правильного варианта,
// ни одно поле не изменяется.
func (s *OptionService) UpdateOption(ctx context.Context, id uint, in OptionInput, partial bool) (*entity.Option, error) {
	if !partial {
		if err := requireID("question", in.QuestionID); err != nil {
			return nil, err
		}
		if err := requireText("text", in.Text, entity.MaxOptionTextLength); err != nil {
			return nil, err
		}
	}

	current, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &entity.Option{
		ID:         current.ID,
		QuestionID: pick(in.QuestionID, current.QuestionID),
		Text:       pick(in.Text, current.Text),
		IsCorrect:  pick(in.IsCorrect, current.IsCorrect),
	}

	if in.QuestionID != nil && *in.QuestionID == 0 {
		return nil, apperrors.NewValidationError("question", msgRequired)
	}
	if err := checkText("text", updated.Text, entity.MaxOptionTextLength); err != nil {
		return nil, err
	}

	if err := s.optionRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrUniquenessViolation) {
			log.Printf("[OptionService] Отклонено обновление варианта ID=%d (%s): у вопроса уже есть правильный вариант",
				id, updated)
		}
		return nil, err
	}
	return updated, nil
}

// DeleteOption удаляет вариант
func (s *OptionService) DeleteOption(ctx context.Context, id uint) error {
	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete option %d: %w", id, err)
	}
	return nil
}
