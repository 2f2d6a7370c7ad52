package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
)

// FlashcardRepo реализует repository.FlashcardRepository
type FlashcardRepo struct {
	db *gorm.DB
}

// NewFlashcardRepo создает новый репозиторий карточек
func NewFlashcardRepo(db *gorm.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("flashcard_images.id")
}

// Create создает карточку и ее изображения в одной транзакции
func (r *FlashcardRepo) Create(ctx context.Context, flashcard *entity.Flashcard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &entity.Subject{}, flashcard.SubjectID, "subject"); err != nil {
			return err
		}
		images := flashcard.Images
		if err := tx.Omit("Subject", "Images").Create(flashcard).Error; err != nil {
			return err
		}
		if err := createImagesTx(tx, flashcard.ID, images); err != nil {
			return err
		}
		flashcard.Images = images
		return nil
	})
}

// GetByID возвращает карточку с изображениями
func (r *FlashcardRepo) GetByID(ctx context.Context, id uint) (*entity.Flashcard, error) {
	var flashcard entity.Flashcard
	if err := r.db.WithContext(ctx).Preload("Images", preloadImages).First(&flashcard, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &flashcard, nil
}

// List возвращает карточки от новых к старым
func (r *FlashcardRepo) List(ctx context.Context, filters repository.FlashcardFilters) ([]entity.Flashcard, error) {
	var flashcards []entity.Flashcard
	query := r.db.WithContext(ctx).Model(&entity.Flashcard{}).Preload("Images", preloadImages)
	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&flashcards).Error
	return flashcards, err
}

// Update обновляет карточку. При replaceImages старые изображения удаляются
// и заменяются flashcard.Images.
func (r *FlashcardRepo) Update(ctx context.Context, flashcard *entity.Flashcard, replaceImages bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.Flashcard{}, flashcard.ID); err != nil {
			return err
		}
		if err := ensureExists(tx, &entity.Subject{}, flashcard.SubjectID, "subject"); err != nil {
			return err
		}
		if err := tx.Model(&entity.Flashcard{ID: flashcard.ID}).
			Select("subject_id", "description").
			Updates(flashcard).Error; err != nil {
			return err
		}
		if replaceImages {
			if err := tx.Where("flashcard_id = ?", flashcard.ID).Delete(&entity.FlashcardImage{}).Error; err != nil {
				return err
			}
			if err := createImagesTx(tx, flashcard.ID, flashcard.Images); err != nil {
				return err
			}
		}
		return tx.Preload("Images", preloadImages).First(flashcard, flashcard.ID).Error
	})
}

// Delete удаляет карточку и ее изображения
func (r *FlashcardRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.Flashcard{}, id); err != nil {
			return err
		}
		return deleteFlashcardsTx(tx, []uint{id})
	})
}

func createImagesTx(tx *gorm.DB, flashcardID uint, images []entity.FlashcardImage) error {
	for i := range images {
		images[i].ID = 0
		images[i].FlashcardID = flashcardID
		if err := tx.Create(&images[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
