package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create создает новую викторину
func (r *QuizRepo) Create(ctx context.Context, quiz *entity.Quiz) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &entity.Subject{}, quiz.SubjectID, "subject"); err != nil {
			return err
		}
		return tx.Omit("Subject", "Questions").Create(quiz).Error
	})
	return translateRef(err, "subject", quiz.SubjectID)
}

// GetByID возвращает викторину по ID
func (r *QuizRepo) GetByID(ctx context.Context, id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину вместе с вопросами и вариантами.
// Вопросы и варианты упорядочены по id, то есть в порядке создания.
func (r *QuizRepo) GetWithQuestions(ctx context.Context, id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &quiz, nil
}

// List возвращает викторины с учетом фильтров
func (r *QuizRepo) List(ctx context.Context, filters repository.QuizFilters) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	query := r.db.WithContext(ctx).Model(&entity.Quiz{})

	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}
	if filters.IsFree != nil {
		query = query.Where("is_free = ?", *filters.IsFree)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	err := query.Order("id").Find(&quizzes).Error
	return quizzes, err
}

// Update обновляет поля викторины
func (r *QuizRepo) Update(ctx context.Context, quiz *entity.Quiz) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.Quiz{}, quiz.ID); err != nil {
			return err
		}
		if err := ensureExists(tx, &entity.Subject{}, quiz.SubjectID, "subject"); err != nil {
			return err
		}
		return tx.Model(&entity.Quiz{ID: quiz.ID}).
			Select("subject_id", "title", "is_free", "logo").
			Updates(quiz).Error
	})
	return translateRef(err, "subject", quiz.SubjectID)
}

// Delete удаляет викторину, ее вопросы и все варианты ответов в одной транзакции
func (r *QuizRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quiz entity.Quiz
		if err := forUpdate(tx).Select("id").First(&quiz, id).Error; err != nil {
			return notFound(err)
		}
		return deleteQuizzesTx(tx, []uint{id})
	})
}
