package dto

import (
	"github.com/yourusername/devoyage-api/internal/service"
)

// NameRequest тело запроса для предмета и врача
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// VideoRequest тело запроса для видео
type VideoRequest struct {
	Subject           *uint        `json:"subject"`
	Title             *string      `json:"title"`
	VideoURL          *string      `json:"video_url"`
	DurationInMinutes *int         `json:"duration_in_minutes"`
	IsFree            *bool        `json:"is_free"`
	Logo              *string      `json:"logo"`
	Doctor            NullableUint `json:"doctor"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r VideoRequest) ToInput() service.VideoInput {
	return service.VideoInput{
		SubjectID:         r.Subject,
		Title:             r.Title,
		VideoURL:          r.VideoURL,
		DurationInMinutes: r.DurationInMinutes,
		IsFree:            r.IsFree,
		Logo:              r.Logo,
		DoctorID:          r.Doctor.Value,
		SetDoctor:         r.Doctor.Set,
	}
}

// ClinicalCaseRequest тело запроса для клинического случая
type ClinicalCaseRequest struct {
	DoctorID          *uint          `json:"doctor_id"`
	Subject           *uint          `json:"subject"`
	CaseTitle         *string        `json:"case_title"`
	GatherEquipments  *string        `json:"gather_equipments"`
	Introduction      *string        `json:"introduction"`
	GeneralInspection *string        `json:"general_inspection"`
	CloserInspection  *string        `json:"closer_inspection"`
	Palpation         *string        `json:"palpation"`
	FinalExamination  *string        `json:"final_examination"`
	References        NullableString `json:"references"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r ClinicalCaseRequest) ToInput() service.ClinicalCaseInput {
	return service.ClinicalCaseInput{
		DoctorID:          r.DoctorID,
		SubjectID:         r.Subject,
		CaseTitle:         r.CaseTitle,
		GatherEquipments:  r.GatherEquipments,
		Introduction:      r.Introduction,
		GeneralInspection: r.GeneralInspection,
		CloserInspection:  r.CloserInspection,
		Palpation:         r.Palpation,
		FinalExamination:  r.FinalExamination,
		References:        r.References.Value,
		SetReferences:     r.References.Set,
	}
}

// FlashcardImageRequest изображение карточки
type FlashcardImageRequest struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// FlashcardRequest тело запроса для карточки
type FlashcardRequest struct {
	Subject     *uint                   `json:"subject"`
	Description *string                 `json:"description"`
	Images      []FlashcardImageRequest `json:"images"`
}

// ToInput преобразует запрос во входные данные сервиса.
// Отсутствующий ключ images дает nil, пустой массив дает пустой срез.
func (r FlashcardRequest) ToInput() service.FlashcardInput {
	in := service.FlashcardInput{SubjectID: r.Subject, Description: r.Description}
	if r.Images != nil {
		in.Images = make([]service.FlashcardImageInput, 0, len(r.Images))
		for _, img := range r.Images {
			in.Images = append(in.Images, service.FlashcardImageInput{Image: img.Image, Caption: img.Caption})
		}
	}
	return in
}

// LoginRequest тело запроса входа
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
}
