package service

import (
	"context"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// VideoInput данные видео. Для DoctorID различаются "не передано" (SetDoctor=false)
// и явный null (SetDoctor=true, DoctorID=nil).
type VideoInput struct {
	SubjectID         *uint
	Title             *string
	VideoURL          *string
	DurationInMinutes *int
	IsFree            *bool
	Logo              *string
	DoctorID          *uint
	SetDoctor         bool
}

// VideoService управляет видео
type VideoService struct {
	videoRepo repository.VideoRepository
}

// NewVideoService создает новый сервис видео
func NewVideoService(videoRepo repository.VideoRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo}
}

// CreateVideo создает видео
func (s *VideoService) CreateVideo(ctx context.Context, in VideoInput) (*entity.Video, error) {
	if err := checkDuration(in.DurationInMinutes); err != nil {
		return nil, err
	}
	if err := validateFullVideo(in); err != nil {
		return nil, err
	}
	video := &entity.Video{}
	applyVideo(video, in)
	if err := validateVideo(video); err != nil {
		return nil, err
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// GetVideo возвращает видео по ID
func (s *VideoService) GetVideo(ctx context.Context, id uint) (*entity.Video, error) {
	return s.videoRepo.GetByID(ctx, id)
}

// ListVideos возвращает видео по фильтрам
func (s *VideoService) ListVideos(ctx context.Context, filters repository.VideoFilters) ([]entity.Video, error) {
	return s.videoRepo.List(ctx, filters)
}

// UpdateVideo обновляет видео (PUT или PATCH)
func (s *VideoService) UpdateVideo(ctx context.Context, id uint, in VideoInput, partial bool) (*entity.Video, error) {
	if err := checkDuration(in.DurationInMinutes); err != nil {
		return nil, err
	}
	if !partial {
		if err := validateFullVideo(in); err != nil {
			return nil, err
		}
	}
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyVideo(video, in)
	if err := validateVideo(video); err != nil {
		return nil, err
	}
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo удаляет видео
func (s *VideoService) DeleteVideo(ctx context.Context, id uint) error {
	return s.videoRepo.Delete(ctx, id)
}

func validateFullVideo(in VideoInput) error {
	if err := requireID("subject", in.SubjectID); err != nil {
		return err
	}
	if err := requireText("title", in.Title, 200); err != nil {
		return err
	}
	if in.VideoURL == nil {
		return apperrors.NewValidationError("video_url", msgRequired)
	}
	if in.DurationInMinutes == nil {
		return apperrors.NewValidationError("duration_in_minutes", msgRequired)
	}
	return nil
}

// applyVideo переносит переданные поля; не переданные сохраняют текущие значения
func applyVideo(v *entity.Video, in VideoInput) {
	v.SubjectID = pick(in.SubjectID, v.SubjectID)
	v.Title = pick(in.Title, v.Title)
	v.VideoURL = pick(in.VideoURL, v.VideoURL)
	if in.DurationInMinutes != nil {
		v.DurationInMinutes = uint(*in.DurationInMinutes)
	}
	v.IsFree = pick(in.IsFree, v.IsFree)
	v.Logo = pick(in.Logo, v.Logo)
	if in.SetDoctor {
		v.DoctorID = in.DoctorID
	}
}

func validateVideo(v *entity.Video) error {
	if v.SubjectID == 0 {
		return apperrors.NewValidationError("subject", msgRequired)
	}
	if err := checkText("title", v.Title, 200); err != nil {
		return err
	}
	if err := checkURL("video_url", v.VideoURL, 200); err != nil {
		return err
	}
	return checkMaxLen("logo", v.Logo, 255)
}

func checkDuration(d *int) error {
	if d != nil && *d < 0 {
		return apperrors.NewValidationError("duration_in_minutes", "Ensure this value is greater than or equal to 0.")
	}
	return nil
}
