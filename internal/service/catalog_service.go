package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// Ключи кеша справочников
const (
	CacheKeySubjects = "catalog:subjects"
	CacheKeyDoctors  = "catalog:doctors"
)

// MaxCatalogNameLength ограничение длины названия предмета и имени врача
const MaxCatalogNameLength = 100

// CatalogService управляет справочниками предметов и врачей.
// Списки кешируются в Redis и сбрасываются при любом изменении.
type CatalogService struct {
	subjectRepo repository.SubjectRepository
	doctorRepo  repository.DoctorRepository
	cacheRepo   repository.CacheRepository
	ttl         time.Duration
}

// NewCatalogService создает новый сервис справочников. cacheRepo может быть nil.
func NewCatalogService(
	subjectRepo repository.SubjectRepository,
	doctorRepo repository.DoctorRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
) *CatalogService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogService{
		subjectRepo: subjectRepo,
		doctorRepo:  doctorRepo,
		cacheRepo:   cacheRepo,
		ttl:         ttl,
	}
}

// --- Subjects ---

// ListSubjects возвращает все предметы (из кеша, если он прогрет)
func (s *CatalogService) ListSubjects(ctx context.Context) ([]entity.Subject, error) {
	var subjects []entity.Subject
	if s.readCache(CacheKeySubjects, &subjects) {
		return subjects, nil
	}
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(CacheKeySubjects, subjects)
	return subjects, nil
}

// GetSubject возвращает предмет по ID
func (s *CatalogService) GetSubject(ctx context.Context, id uint) (*entity.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// CreateSubject создает предмет
func (s *CatalogService) CreateSubject(ctx context.Context, name string) (*entity.Subject, error) {
	if err := checkText("name", name, MaxCatalogNameLength); err != nil {
		return nil, err
	}
	subject := &entity.Subject{Name: name}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	s.invalidate(CacheKeySubjects)
	log.Printf("[CatalogService] Создан предмет ID=%d: %s", subject.ID, subject)
	return subject, nil
}

// UpdateSubject переименовывает предмет
func (s *CatalogService) UpdateSubject(ctx context.Context, id uint, name string) (*entity.Subject, error) {
	if err := checkText("name", name, MaxCatalogNameLength); err != nil {
		return nil, err
	}
	subject := &entity.Subject{ID: id, Name: name}
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	s.invalidate(CacheKeySubjects)
	return subject, nil
}

// DeleteSubject удаляет предмет со всем содержимым
func (s *CatalogService) DeleteSubject(ctx context.Context, id uint) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[CatalogService] Удален предмет ID=%d вместе с содержимым", id)
	s.invalidate(CacheKeySubjects)
	return nil
}

// --- Doctors ---

// ListDoctors возвращает всех врачей (из кеша, если он прогрет)
func (s *CatalogService) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if s.readCache(CacheKeyDoctors, &doctors) {
		return doctors, nil
	}
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(CacheKeyDoctors, doctors)
	return doctors, nil
}

// GetDoctor возвращает врача по ID
func (s *CatalogService) GetDoctor(ctx context.Context, id uint) (*entity.Doctor, error) {
	return s.doctorRepo.GetByID(ctx, id)
}

// CreateDoctor создает врача
func (s *CatalogService) CreateDoctor(ctx context.Context, name string) (*entity.Doctor, error) {
	if err := checkText("name", name, MaxCatalogNameLength); err != nil {
		return nil, err
	}
	doctor := &entity.Doctor{Name: name}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	s.invalidate(CacheKeyDoctors)
	log.Printf("[CatalogService] Создан врач ID=%d: %s", doctor.ID, doctor)
	return doctor, nil
}

// UpdateDoctor переименовывает врача
func (s *CatalogService) UpdateDoctor(ctx context.Context, id uint, name string) (*entity.Doctor, error) {
	if err := checkText("name", name, MaxCatalogNameLength); err != nil {
		return nil, err
	}
	doctor := &entity.Doctor{ID: id, Name: name}
	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	s.invalidate(CacheKeyDoctors)
	return doctor, nil
}

// DeleteDoctor удаляет врача и его клинические случаи
func (s *CatalogService) DeleteDoctor(ctx context.Context, id uint) error {
	if err := s.doctorRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[CatalogService] Удален врач ID=%d", id)
	s.invalidate(CacheKeyDoctors)
	return nil
}

// --- Кеш ---
// Ошибки Redis не прерывают запрос: данные берутся из БД.

func (s *CatalogService) readCache(key string, dest interface{}) bool {
	if s.cacheRepo == nil {
		return false
	}
	err := s.cacheRepo.GetJSON(key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[CatalogService] Ошибка чтения кеша %s: %v", key, err)
	}
	return false
}

func (s *CatalogService) writeCache(key string, value interface{}) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.SetJSON(key, value, s.ttl); err != nil {
		log.Printf("[CatalogService] Ошибка записи кеша %s: %v", key, err)
	}
}

func (s *CatalogService) invalidate(keys ...string) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(keys...); err != nil {
		log.Printf("[CatalogService] Ошибка сброса кеша %v: %v", keys, err)
	}
}
