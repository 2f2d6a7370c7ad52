package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// VideoRepo реализует repository.VideoRepository
type VideoRepo struct {
	db *gorm.DB
}

// NewVideoRepo создает новый репозиторий видео
func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// Create создает видео
func (r *VideoRepo) Create(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkVideoRefs(tx, video); err != nil {
			return err
		}
		return tx.Create(video).Error
	})
}

// GetByID возвращает видео по ID
func (r *VideoRepo) GetByID(ctx context.Context, id uint) (*entity.Video, error) {
	var video entity.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &video, nil
}

// List возвращает видео с учетом фильтров
func (r *VideoRepo) List(ctx context.Context, filters repository.VideoFilters) ([]entity.Video, error) {
	var videos []entity.Video
	query := r.db.WithContext(ctx).Model(&entity.Video{})
	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}
	if filters.DoctorID != nil {
		query = query.Where("doctor_id = ?", *filters.DoctorID)
	}
	if filters.IsFree != nil {
		query = query.Where("is_free = ?", *filters.IsFree)
	}
	err := query.Order("id").Find(&videos).Error
	return videos, err
}

// Update обновляет все поля видео
func (r *VideoRepo) Update(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.Video{}, video.ID); err != nil {
			return err
		}
		if err := checkVideoRefs(tx, video); err != nil {
			return err
		}
		return tx.Model(&entity.Video{ID: video.ID}).
			Select("subject_id", "title", "video_url", "duration_in_minutes", "is_free", "logo", "doctor_id").
			Updates(video).Error
	})
}

// Delete удаляет видео
func (r *VideoRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func checkVideoRefs(tx *gorm.DB, video *entity.Video) error {
	if err := ensureExists(tx, &entity.Subject{}, video.SubjectID, "subject"); err != nil {
		return err
	}
	if video.DoctorID != nil {
		return ensureExists(tx, &entity.Doctor{}, *video.DoctorID, "doctor")
	}
	return nil
}
