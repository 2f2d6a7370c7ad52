package service

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// ClinicalCaseInput данные клинического случая
type ClinicalCaseInput struct {
	DoctorID          *uint
	SubjectID         *uint
	CaseTitle         *string
	GatherEquipments  *string
	Introduction      *string
	GeneralInspection *string
	CloserInspection  *string
	Palpation         *string
	FinalExamination  *string
	References        *string
	SetReferences     bool // References передан явно (в том числе null)
}

// ClinicalCaseService управляет клиническими случаями
type ClinicalCaseService struct {
	caseRepo repository.ClinicalCaseRepository
}

// NewClinicalCaseService создает новый сервис клинических случаев
func NewClinicalCaseService(caseRepo repository.ClinicalCaseRepository) *ClinicalCaseService {
	return &ClinicalCaseService{caseRepo: caseRepo}
}

// CreateCase создает клинический случай
func (s *ClinicalCaseService) CreateCase(ctx context.Context, in ClinicalCaseInput) (*entity.ClinicalCase, error) {
	if err := requireCaseFields(in); err != nil {
		return nil, err
	}
	cc := &entity.ClinicalCase{}
	applyCase(cc, in)
	if err := validateCase(cc); err != nil {
		return nil, err
	}
	if err := s.caseRepo.Create(ctx, cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// GetCase возвращает случай по ID
func (s *ClinicalCaseService) GetCase(ctx context.Context, id uint) (*entity.ClinicalCase, error) {
	return s.caseRepo.GetByID(ctx, id)
}

// ListCases возвращает случаи от новых к старым
func (s *ClinicalCaseService) ListCases(ctx context.Context, filters repository.ClinicalCaseFilters) ([]entity.ClinicalCase, error) {
	return s.caseRepo.List(ctx, filters)
}

// UpdateCase обновляет случай (PUT или PATCH)
func (s *ClinicalCaseService) UpdateCase(ctx context.Context, id uint, in ClinicalCaseInput, partial bool) (*entity.ClinicalCase, error) {
	if !partial {
		if err := requireCaseFields(in); err != nil {
			return nil, err
		}
	}
	cc, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCase(cc, in)
	if err := validateCase(cc); err != nil {
		return nil, err
	}
	if err := s.caseRepo.Update(ctx, cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// DeleteCase удаляет случай
func (s *ClinicalCaseService) DeleteCase(ctx context.Context, id uint) error {
	return s.caseRepo.Delete(ctx, id)
}

// caseSections возвращает текстовые разделы случая в порядке полей
func caseSections(cc *entity.ClinicalCase) []struct {
	field string
	value string
} {
	return []struct {
		field string
		value string
	}{
		{"gather_equipments", cc.GatherEquipments},
		{"introduction", cc.Introduction},
		{"general_inspection", cc.GeneralInspection},
		{"closer_inspection", cc.CloserInspection},
		{"palpation", cc.Palpation},
		{"final_examination", cc.FinalExamination},
	}
}

func requireCaseFields(in ClinicalCaseInput) error {
	if err := requireID("doctor_id", in.DoctorID); err != nil {
		return err
	}
	if err := requireID("subject", in.SubjectID); err != nil {
		return err
	}
	required := []struct {
		field string
		value *string
	}{
		{"case_title", in.CaseTitle},
		{"gather_equipments", in.GatherEquipments},
		{"introduction", in.Introduction},
		{"general_inspection", in.GeneralInspection},
		{"closer_inspection", in.CloserInspection},
		{"palpation", in.Palpation},
		{"final_examination", in.FinalExamination},
	}
	for _, r := range required {
		if r.value == nil {
			return apperrors.NewValidationError(r.field, msgRequired)
		}
	}
	return nil
}

func applyCase(cc *entity.ClinicalCase, in ClinicalCaseInput) {
	cc.DoctorID = pick(in.DoctorID, cc.DoctorID)
	cc.SubjectID = pick(in.SubjectID, cc.SubjectID)
	cc.CaseTitle = pick(in.CaseTitle, cc.CaseTitle)
	cc.GatherEquipments = pick(in.GatherEquipments, cc.GatherEquipments)
	cc.Introduction = pick(in.Introduction, cc.Introduction)
	cc.GeneralInspection = pick(in.GeneralInspection, cc.GeneralInspection)
	cc.CloserInspection = pick(in.CloserInspection, cc.CloserInspection)
	cc.Palpation = pick(in.Palpation, cc.Palpation)
	cc.FinalExamination = pick(in.FinalExamination, cc.FinalExamination)
	if in.SetReferences {
		cc.References = in.References
	}
}

func validateCase(cc *entity.ClinicalCase) error {
	if cc.DoctorID == 0 {
		return apperrors.NewValidationError("doctor_id", msgRequired)
	}
	if cc.SubjectID == 0 {
		return apperrors.NewValidationError("subject", msgRequired)
	}
	if err := checkText("case_title", cc.CaseTitle, 255); err != nil {
		return err
	}
	for _, section := range caseSections(cc) {
		if err := checkText(section.field, section.value, 0); err != nil {
			return err
		}
	}
	return nil
}
