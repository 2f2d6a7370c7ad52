package service

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
)

// captureLog перенаправляет стандартный логгер в буфер на время теста
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestQuestionService_CreateQuestion_LogsPreview(t *testing.T) {
	// Arrange
	logs := captureLog(t)
	ctx := context.Background()
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, new(MockQuizRepository))
	questionRepo.On("Create", ctx, mock.Anything).Return(nil)
	text := strings.Repeat("ж", 60)

	// Act
	_, err := svc.CreateQuestion(ctx, QuestionInput{QuizID: uintPtr(1), Text: strPtr(text)})

	// Assert
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"`+strings.Repeat("ж", 50)+`"`)
	assert.NotContains(t, logs.String(), text, "в лог попадает только начало текста")
}

func TestOptionService_CreateOption_LogsRejectedOption(t *testing.T) {
	logs := captureLog(t)
	ctx := context.Background()
	repo := new(MockOptionRepository)
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrCorrectOptionExists)

	_, err := NewOptionService(repo).CreateOption(ctx, OptionInput{QuestionID: uintPtr(12), Text: strPtr("Митральный"), IsCorrect: boolPtr(true)})

	require.Error(t, err)
	assert.Contains(t, logs.String(), "Option for question: 12 | Митральный")
}

func TestQuizService_CreateQuiz_LogsTitle(t *testing.T) {
	logs := captureLog(t)
	ctx := context.Background()
	quizRepo := new(MockQuizRepository)
	quizRepo.On("Create", ctx, mock.AnythingOfType("*entity.Quiz")).Return(nil)

	_, err := NewQuizService(quizRepo).CreateQuiz(ctx, QuizInput{SubjectID: uintPtr(1), Title: strPtr("Cardiology basics")})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Создана викторина ID=0: Cardiology basics")
}

func TestCatalogService_CreateDoctor_LogsName(t *testing.T) {
	logs := captureLog(t)
	ctx := context.Background()
	doctorRepo := new(MockDoctorRepository)
	doctorRepo.On("Create", ctx, &entity.Doctor{Name: "Dr. Amina Yusuf"}).Return(nil)
	svc := NewCatalogService(new(MockSubjectRepository), doctorRepo, nil, 0)

	_, err := svc.CreateDoctor(ctx, "Dr. Amina Yusuf")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Создан врач ID=0: Dr. Amina Yusuf")
}
