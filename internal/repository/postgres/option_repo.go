package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// OptionRepo реализует repository.OptionRepository.
//
// Правило "не больше одного правильного варианта на вопрос" проверяется дважды:
// внутри транзакции под блокировкой строки вопроса (SELECT ... FOR UPDATE) и
// partial unique index uniq_correct_option_per_question на уровне БД.
// Конкурирующие запросы на один вопрос сериализуются блокировкой,
// а индекс отсекает всё, что обошло проверку.
type OptionRepo struct {
	db *gorm.DB
}

// NewOptionRepo создает новый репозиторий вариантов ответа
func NewOptionRepo(db *gorm.DB) *OptionRepo {
	return &OptionRepo{db: db}
}

// Create создает вариант ответа
func (r *OptionRepo) Create(ctx context.Context, option *entity.Option) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockQuestion(tx, option.QuestionID); err != nil {
			return err
		}
		if option.IsCorrect {
			if err := ensureNoOtherCorrect(tx, option.QuestionID, 0); err != nil {
				return err
			}
		}
		return tx.Create(option).Error
	})
	return translateOptionError(err)
}

// GetByID возвращает вариант по ID
func (r *OptionRepo) GetByID(ctx context.Context, id uint) (*entity.Option, error) {
	var option entity.Option
	if err := r.db.WithContext(ctx).First(&option, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &option, nil
}

// List возвращает варианты в порядке создания
func (r *OptionRepo) List(ctx context.Context, filters repository.OptionFilters) ([]entity.Option, error) {
	var options []entity.Option
	query := r.db.WithContext(ctx).Model(&entity.Option{})
	if filters.QuestionID != nil {
		query = query.Where("question_id = ?", *filters.QuestionID)
	}
	err := query.Order("id").Find(&options).Error
	return options, err
}

// Update обновляет вариант целиком. Если вариант становится правильным,
// а у вопроса уже есть другой правильный вариант, изменения не применяются.
func (r *OptionRepo) Update(ctx context.Context, option *entity.Option) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Порядок блокировок: вопрос, затем вариант (как при каскадном удалении)
		if err := lockQuestion(tx, option.QuestionID); err != nil {
			return err
		}

		var current entity.Option
		if err := forUpdate(tx).First(&current, option.ID).Error; err != nil {
			return notFound(err)
		}

		if option.IsCorrect {
			if err := ensureNoOtherCorrect(tx, option.QuestionID, option.ID); err != nil {
				return err
			}
		}

		return tx.Model(&entity.Option{}).
			Where("id = ?", option.ID).
			Updates(map[string]interface{}{
				"question_id": option.QuestionID,
				"text":        option.Text,
				"is_correct":  option.IsCorrect,
			}).Error
	})
	return translateOptionError(err)
}

// Delete удаляет вариант
func (r *OptionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Option{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// lockQuestion блокирует строку вопроса до конца транзакции.
// Отсутствующий вопрос дает ошибку ссылки в поле "question".
func lockQuestion(tx *gorm.DB, questionID uint) error {
	var question entity.Question
	err := forUpdate(tx).Select("id").First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewReferenceError("question", questionID)
	}
	return err
}

// ensureNoOtherCorrect проверяет, что у вопроса нет правильного варианта кроме excludeID
func ensureNoOtherCorrect(tx *gorm.DB, questionID, excludeID uint) error {
	var count int64
	query := tx.Model(&entity.Option{}).Where("question_id = ? AND is_correct = ?", questionID, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrCorrectOptionExists
	}
	return nil
}

// translateOptionError переводит 23505 от partial unique index в ErrCorrectOptionExists
func translateOptionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCorrectOptionExists) {
		return err
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w (%v)", repository.ErrCorrectOptionExists, err)
	}
	return err
}
