package service

import (
	"context"
	"fmt"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// FlashcardImageInput изображение карточки
type FlashcardImageInput struct {
	Image   string
	Caption string
}

// FlashcardInput данные карточки. Images == nil означает "не менять изображения".
type FlashcardInput struct {
	SubjectID   *uint
	Description *string
	Images      []FlashcardImageInput
}

// FlashcardService управляет карточками
type FlashcardService struct {
	flashcardRepo repository.FlashcardRepository
}

// NewFlashcardService создает новый сервис карточек
func NewFlashcardService(flashcardRepo repository.FlashcardRepository) *FlashcardService {
	return &FlashcardService{flashcardRepo: flashcardRepo}
}

// CreateFlashcard создает карточку с изображениями
func (s *FlashcardService) CreateFlashcard(ctx context.Context, in FlashcardInput) (*entity.Flashcard, error) {
	if err := requireID("subject", in.SubjectID); err != nil {
		return nil, err
	}
	images, err := buildImages(in.Images)
	if err != nil {
		return nil, err
	}
	flashcard := &entity.Flashcard{
		SubjectID:   *in.SubjectID,
		Description: pick(in.Description, ""),
		Images:      images,
	}
	if err := s.flashcardRepo.Create(ctx, flashcard); err != nil {
		return nil, err
	}
	return flashcard, nil
}

// GetFlashcard возвращает карточку по ID
func (s *FlashcardService) GetFlashcard(ctx context.Context, id uint) (*entity.Flashcard, error) {
	return s.flashcardRepo.GetByID(ctx, id)
}

// ListFlashcards возвращает карточки от новых к старым
func (s *FlashcardService) ListFlashcards(ctx context.Context, subjectID *uint) ([]entity.Flashcard, error) {
	return s.flashcardRepo.List(ctx, repository.FlashcardFilters{SubjectID: subjectID})
}

// UpdateFlashcard обновляет карточку. Набор изображений заменяется целиком,
// только если images передан (в том числе пустым массивом).
func (s *FlashcardService) UpdateFlashcard(ctx context.Context, id uint, in FlashcardInput, partial bool) (*entity.Flashcard, error) {
	if !partial {
		if err := requireID("subject", in.SubjectID); err != nil {
			return nil, err
		}
	}
	flashcard, err := s.flashcardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flashcard.SubjectID = pick(in.SubjectID, flashcard.SubjectID)
	flashcard.Description = pick(in.Description, flashcard.Description)
	if flashcard.SubjectID == 0 {
		return nil, apperrors.NewValidationError("subject", msgRequired)
	}

	replaceImages := in.Images != nil
	if replaceImages {
		images, err := buildImages(in.Images)
		if err != nil {
			return nil, err
		}
		flashcard.Images = images
	}

	if err := s.flashcardRepo.Update(ctx, flashcard, replaceImages); err != nil {
		return nil, err
	}
	return flashcard, nil
}

// DeleteFlashcard удаляет карточку и изображения
func (s *FlashcardService) DeleteFlashcard(ctx context.Context, id uint) error {
	return s.flashcardRepo.Delete(ctx, id)
}

func buildImages(in []FlashcardImageInput) ([]entity.FlashcardImage, error) {
	images := make([]entity.FlashcardImage, 0, len(in))
	for i, img := range in {
		if err := checkText(fmt.Sprintf("images[%d].image", i), img.Image, 255); err != nil {
			return nil, err
		}
		if err := checkMaxLen(fmt.Sprintf("images[%d].caption", i), img.Caption, 255); err != nil {
			return nil, err
		}
		images = append(images, entity.FlashcardImage{Image: img.Image, Caption: img.Caption})
	}
	return images, nil
}
