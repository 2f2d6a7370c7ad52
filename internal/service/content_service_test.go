package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// --- Video ---

func validVideoInput() VideoInput {
	return VideoInput{
		SubjectID:         uintPtr(1),
		Title:             strPtr("ECG reading"),
		VideoURL:          strPtr("https://videos.example.com/ecg"),
		DurationInMinutes: intPtr(12),
	}
}

func TestVideoService_CreateVideo(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVideoRepository)
	svc := NewVideoService(repo)
	repo.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool {
		return v.SubjectID == 1 && v.DurationInMinutes == 12 && v.DoctorID == nil && !v.IsFree
	})).Return(nil)

	_, err := svc.CreateVideo(ctx, validVideoInput())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestVideoService_CreateVideo_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *VideoInput)
		field  string
	}{
		{"плохой URL", func(in *VideoInput) { in.VideoURL = strPtr("not a url") }, "video_url"},
		{"ftp URL", func(in *VideoInput) { in.VideoURL = strPtr("ftp://example.com/v") }, "video_url"},
		{"URL без хоста", func(in *VideoInput) { in.VideoURL = strPtr("https://") }, "video_url"},
		{"относительный путь", func(in *VideoInput) { in.VideoURL = strPtr("/videos/ecg") }, "video_url"},
		{"отрицательная длительность", func(in *VideoInput) { in.DurationInMinutes = intPtr(-1) }, "duration_in_minutes"},
		{"нет длительности", func(in *VideoInput) { in.DurationInMinutes = nil }, "duration_in_minutes"},
		{"нет предмета", func(in *VideoInput) { in.SubjectID = nil }, "subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockVideoRepository)
			in := validVideoInput()
			tt.mutate(&in)

			_, err := NewVideoService(repo).CreateVideo(context.Background(), in)

			require.Error(t, err)
			field, _ := apperrors.FieldOf(err)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestVideoService_UpdateVideo_PatchClearsDoctor(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVideoRepository)
	svc := NewVideoService(repo)
	current := &entity.Video{ID: 1, SubjectID: 1, Title: "T", VideoURL: "https://x.io/v", DoctorID: uintPtr(5)}
	repo.On("GetByID", ctx, uint(1)).Return(current, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(v *entity.Video) bool { return v.DoctorID == nil && v.Title == "T" })).Return(nil)

	video, err := svc.UpdateVideo(ctx, 1, VideoInput{SetDoctor: true}, true)

	require.NoError(t, err)
	assert.Nil(t, video.DoctorID)
}

// --- ClinicalCase ---

func validCaseInput() ClinicalCaseInput {
	return ClinicalCaseInput{
		DoctorID:          uintPtr(1),
		SubjectID:         uintPtr(1),
		CaseTitle:         strPtr("Chest pain"),
		GatherEquipments:  strPtr("Stethoscope"),
		Introduction:      strPtr("Introduce yourself"),
		GeneralInspection: strPtr("Look around the bed"),
		CloserInspection:  strPtr("Hands"),
		Palpation:         strPtr("Apex beat"),
		FinalExamination:  strPtr("Thank the patient"),
	}
}

func TestClinicalCaseService_CreateCase(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClinicalCaseRepository)
	svc := NewClinicalCaseService(repo)
	repo.On("Create", ctx, mock.MatchedBy(func(cc *entity.ClinicalCase) bool {
		return cc.CaseTitle == "Chest pain" && cc.References == nil
	})).Return(nil)

	_, err := svc.CreateCase(ctx, validCaseInput())

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestClinicalCaseService_CreateCase_MissingSection(t *testing.T) {
	in := validCaseInput()
	in.Palpation = nil

	_, err := NewClinicalCaseService(new(MockClinicalCaseRepository)).CreateCase(context.Background(), in)

	field, _ := apperrors.FieldOf(err)
	assert.Equal(t, "palpation", field)
}

func TestClinicalCaseService_UpdateCase_PatchKeepsReferences(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClinicalCaseRepository)
	svc := NewClinicalCaseService(repo)
	refs := "Macleod's Clinical Examination"
	current := &entity.ClinicalCase{
		ID: 1, DoctorID: 1, SubjectID: 1, CaseTitle: "A", GatherEquipments: "b", Introduction: "c",
		GeneralInspection: "d", CloserInspection: "e", Palpation: "f", FinalExamination: "g", References: &refs,
	}
	repo.On("GetByID", ctx, uint(1)).Return(current, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	cc, err := svc.UpdateCase(ctx, 1, ClinicalCaseInput{CaseTitle: strPtr("B")}, true)

	require.NoError(t, err)
	assert.Equal(t, "B", cc.CaseTitle)
	require.NotNil(t, cc.References)
	assert.Equal(t, refs, *cc.References)
}

// --- Flashcard ---

func TestFlashcardService_CreateFlashcard(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	repo.On("Create", ctx, mock.MatchedBy(func(f *entity.Flashcard) bool {
		return f.SubjectID == 1 && len(f.Images) == 1 && f.Images[0].Caption == "Axial view"
	})).Return(nil)

	_, err := svc.CreateFlashcard(ctx, FlashcardInput{
		SubjectID: uintPtr(1),
		Images:    []FlashcardImageInput{{Image: "flashcards/ct.png", Caption: "Axial view"}},
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFlashcardService_UpdateFlashcard_PatchWithoutImages(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	repo.On("GetByID", ctx, uint(1)).Return(&entity.Flashcard{ID: 1, SubjectID: 1, Description: "old"}, nil)
	repo.On("Update", ctx, mock.Anything, false).Return(nil)

	f, err := svc.UpdateFlashcard(ctx, 1, FlashcardInput{Description: strPtr("new")}, true)

	require.NoError(t, err)
	assert.Equal(t, "new", f.Description)
	repo.AssertExpectations(t)
}

func TestFlashcardService_UpdateFlashcard_EmptyImagesClears(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFlashcardRepository)
	svc := NewFlashcardService(repo)
	repo.On("GetByID", ctx, uint(1)).Return(&entity.Flashcard{ID: 1, SubjectID: 1}, nil)
	repo.On("Update", ctx, mock.Anything, true).Return(nil)

	_, err := svc.UpdateFlashcard(ctx, 1, FlashcardInput{SubjectID: uintPtr(1), Images: []FlashcardImageInput{}}, false)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFlashcardService_BlankImageRejected(t *testing.T) {
	_, err := NewFlashcardService(new(MockFlashcardRepository)).CreateFlashcard(context.Background(), FlashcardInput{
		SubjectID: uintPtr(1),
		Images:    []FlashcardImageInput{{Image: ""}},
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
