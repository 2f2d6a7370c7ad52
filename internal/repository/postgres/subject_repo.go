package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

var errSubjectNameTaken = apperrors.NewUniquenessError("name", "subject with this name already exists")

// SubjectRepo реализует repository.SubjectRepository
type SubjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo создает новый репозиторий предметов
func NewSubjectRepo(db *gorm.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// Create создает предмет
func (r *SubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	err := r.db.WithContext(ctx).Create(subject).Error
	if isUniqueViolation(err) {
		return errSubjectNameTaken
	}
	return err
}

// GetByID возвращает предмет по ID
func (r *SubjectRepo) GetByID(ctx context.Context, id uint) (*entity.Subject, error) {
	var subject entity.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &subject, nil
}

// List возвращает все предметы
func (r *SubjectRepo) List(ctx context.Context) ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.WithContext(ctx).Order("id").Find(&subjects).Error
	return subjects, err
}

// Update переименовывает предмет
func (r *SubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	result := r.db.WithContext(ctx).Model(&entity.Subject{}).
		Where("id = ?", subject.ID).
		Update("name", subject.Name)
	if isUniqueViolation(result.Error) {
		return errSubjectNameTaken
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет предмет и все, чем он владеет: викторины (с вопросами и вариантами),
// видео, клинические случаи и карточки (с изображениями)
func (r *SubjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subject entity.Subject
		if err := forUpdate(tx).First(&subject, id).Error; err != nil {
			return notFound(err)
		}

		quizIDs, err := pluckIDs(tx, &entity.Quiz{}, "subject_id = ?", id)
		if err != nil {
			return err
		}
		if err := deleteQuizzesTx(tx, quizIDs); err != nil {
			return err
		}

		flashcardIDs, err := pluckIDs(tx, &entity.Flashcard{}, "subject_id = ?", id)
		if err != nil {
			return err
		}
		if err := deleteFlashcardsTx(tx, flashcardIDs); err != nil {
			return err
		}

		if err := tx.Where("subject_id = ?", id).Delete(&entity.Video{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&entity.ClinicalCase{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Subject{}, id).Error
	})
}
