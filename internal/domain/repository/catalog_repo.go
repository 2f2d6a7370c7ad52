package repository

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
)

// SubjectRepository определяет методы для работы с предметами
type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	GetByID(ctx context.Context, id uint) (*entity.Subject, error)
	List(ctx context.Context) ([]entity.Subject, error)
	Update(ctx context.Context, subject *entity.Subject) error
	// Delete удаляет предмет вместе со всеми викторинами, видео, клиническими случаями и карточками
	Delete(ctx context.Context, id uint) error
}

// DoctorRepository определяет методы для работы с врачами
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	GetByID(ctx context.Context, id uint) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	// Delete удаляет врача и его клинические случаи; у видео врача сбрасывается doctor_id
	Delete(ctx context.Context, id uint) error
}

// VideoFilters фильтры списка видео
type VideoFilters struct {
	SubjectID *uint
	DoctorID  *uint
	IsFree    *bool
}

// VideoRepository определяет методы для работы с видео
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id uint) (*entity.Video, error)
	List(ctx context.Context, filters VideoFilters) ([]entity.Video, error)
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id uint) error
}
