package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

var errDoctorNameTaken = apperrors.NewUniquenessError("name", "doctor with this name already exists")

// DoctorRepo реализует repository.DoctorRepository
type DoctorRepo struct {
	db *gorm.DB
}

// NewDoctorRepo создает новый репозиторий врачей
func NewDoctorRepo(db *gorm.DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

// Create создает врача
func (r *DoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	err := r.db.WithContext(ctx).Create(doctor).Error
	if isUniqueViolation(err) {
		return errDoctorNameTaken
	}
	return err
}

// GetByID возвращает врача по ID
func (r *DoctorRepo) GetByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &doctor, nil
}

// List возвращает всех врачей
func (r *DoctorRepo) List(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("id").Find(&doctors).Error
	return doctors, err
}

// Update переименовывает врача
func (r *DoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	result := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("id = ?", doctor.ID).
		Update("name", doctor.Name)
	if isUniqueViolation(result.Error) {
		return errDoctorNameTaken
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет врача и его клинические случаи. Видео врача остаются без автора.
func (r *DoctorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor entity.Doctor
		if err := forUpdate(tx).First(&doctor, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&entity.Video{}).
			Where("doctor_id = ?", id).
			Update("doctor_id", gorm.Expr("NULL")).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&entity.ClinicalCase{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Doctor{}, id).Error
	})
}
