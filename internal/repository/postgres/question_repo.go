package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает вопрос и вложенные варианты в одной транзакции.
// Если среди вложенных вариантов больше одного правильного, ничего не создается.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	if question.CountCorrect() > 1 {
		return repository.ErrCorrectOptionExists
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &entity.Quiz{}, question.QuizID, "mcq"); err != nil {
			return err
		}

		options := question.Options
		if err := tx.Omit(clause.Associations).Create(question).Error; err != nil {
			return err
		}

		for i := range options {
			options[i].ID = 0
			options[i].QuestionID = question.ID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}
		question.Options = options
		return nil
	})
	return translateOptionError(translateRef(err, "mcq", question.QuizID))
}

// GetByID возвращает вопрос с вариантами
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &question, nil
}

// List возвращает вопросы с вариантами в порядке создания
func (r *QuestionRepo) List(ctx context.Context, filters repository.QuestionFilters) ([]entity.Question, error) {
	var questions []entity.Question
	query := r.db.WithContext(ctx).Model(&entity.Question{}).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id")
		})
	if filters.QuizID != nil {
		query = query.Where("mcq_id = ?", *filters.QuizID)
	}
	err := query.Order("id").Find(&questions).Error
	return questions, err
}

// Update обновляет текст вопроса и его викторину
func (r *QuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.Question{}, question.ID); err != nil {
			return err
		}
		// Порядок блокировок: викторина, затем вопрос (как при каскадном удалении)
		if err := ensureExists(tx, &entity.Quiz{}, question.QuizID, "mcq"); err != nil {
			return err
		}
		var current entity.Question
		if err := forUpdate(tx).Select("id").First(&current, question.ID).Error; err != nil {
			return notFound(err)
		}
		return tx.Model(&entity.Question{}).
			Where("id = ?", question.ID).
			Updates(map[string]interface{}{
				"mcq_id": question.QuizID,
				"text":   question.Text,
			}).Error
	})
	return translateRef(err, "mcq", question.QuizID)
}

// Delete удаляет вопрос и все его варианты в одной транзакции
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question entity.Question
		if err := forUpdate(tx).Select("id").First(&question, id).Error; err != nil {
			return notFound(err)
		}
		return deleteQuestionsTx(tx, []uint{id})
	})
}
