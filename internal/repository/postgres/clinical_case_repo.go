package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// ClinicalCaseRepo реализует repository.ClinicalCaseRepository
type ClinicalCaseRepo struct {
	db *gorm.DB
}

// NewClinicalCaseRepo создает новый репозиторий клинических случаев
func NewClinicalCaseRepo(db *gorm.DB) *ClinicalCaseRepo {
	return &ClinicalCaseRepo{db: db}
}

// Create создает клинический случай и подгружает врача для ответа
func (r *ClinicalCaseRepo) Create(ctx context.Context, cc *entity.ClinicalCase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkClinicalCaseRefs(tx, cc); err != nil {
			return err
		}
		if err := tx.Omit("Doctor").Create(cc).Error; err != nil {
			return err
		}
		return tx.Preload("Doctor").First(cc, cc.ID).Error
	})
}

// GetByID возвращает случай вместе с врачом
func (r *ClinicalCaseRepo) GetByID(ctx context.Context, id uint) (*entity.ClinicalCase, error) {
	var cc entity.ClinicalCase
	if err := r.db.WithContext(ctx).Preload("Doctor").First(&cc, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &cc, nil
}

// List возвращает случаи от новых к старым
func (r *ClinicalCaseRepo) List(ctx context.Context, filters repository.ClinicalCaseFilters) ([]entity.ClinicalCase, error) {
	var cases []entity.ClinicalCase
	query := r.db.WithContext(ctx).Model(&entity.ClinicalCase{}).Preload("Doctor")
	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}
	if filters.DoctorID != nil {
		query = query.Where("doctor_id = ?", *filters.DoctorID)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&cases).Error
	return cases, err
}

// Update обновляет все поля случая кроме created_at
func (r *ClinicalCaseRepo) Update(ctx context.Context, cc *entity.ClinicalCase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFound(tx, &entity.ClinicalCase{}, cc.ID); err != nil {
			return err
		}
		if err := checkClinicalCaseRefs(tx, cc); err != nil {
			return err
		}
		cc.UpdatedAt = time.Now()
		if err := tx.Model(&entity.ClinicalCase{ID: cc.ID}).
			Select("doctor_id", "subject_id", "case_title", "gather_equipments", "introduction",
				"general_inspection", "closer_inspection", "palpation", "final_examination",
				"references", "updated_at").
			Updates(cc).Error; err != nil {
			return err
		}
		return tx.Preload("Doctor").First(cc, cc.ID).Error
	})
}

// Delete удаляет клинический случай
func (r *ClinicalCaseRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.ClinicalCase{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func checkClinicalCaseRefs(tx *gorm.DB, cc *entity.ClinicalCase) error {
	if err := ensureExists(tx, &entity.Doctor{}, cc.DoctorID, "doctor_id"); err != nil {
		return err
	}
	return ensureExists(tx, &entity.Subject{}, cc.SubjectID, "subject")
}
