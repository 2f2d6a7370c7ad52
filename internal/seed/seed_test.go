package seed

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/service"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListSubjects(ctx context.Context) ([]entity.Subject, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Subject), args.Error(1)
}

func (m *mockCatalog) CreateSubject(ctx context.Context, name string) (*entity.Subject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *mockCatalog) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *mockCatalog) CreateDoctor(ctx context.Context, name string) (*entity.Doctor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

// recorder записывает вызовы создания контента
type recorder struct {
	quizzes   []service.QuizInput
	questions []service.QuestionInput
	videos    []service.VideoInput
	failOn    string
}

func (r *recorder) CreateQuiz(_ context.Context, in service.QuizInput) (*entity.Quiz, error) {
	r.quizzes = append(r.quizzes, in)
	return &entity.Quiz{ID: uint(len(r.quizzes)), SubjectID: *in.SubjectID, Title: *in.Title}, nil
}

func (r *recorder) CreateQuestion(_ context.Context, in service.QuestionInput) (*entity.Question, error) {
	if r.failOn != "" && strings.Contains(*in.Text, r.failOn) {
		return nil, errors.New("boom")
	}
	r.questions = append(r.questions, in)
	q := &entity.Question{ID: uint(len(r.questions)), QuizID: *in.QuizID, Text: *in.Text}
	for _, o := range in.Options {
		q.Options = append(q.Options, entity.Option{Text: *o.Text, IsCorrect: *o.IsCorrect})
	}
	return q, nil
}

func (r *recorder) CreateVideo(_ context.Context, in service.VideoInput) (*entity.Video, error) {
	r.videos = append(r.videos, in)
	return &entity.Video{ID: uint(len(r.videos))}, nil
}

func loadSample(t *testing.T) *Fixture {
	t.Helper()
	file, err := os.Open("../../fixtures/sample.yaml")
	require.NoError(t, err)
	defer file.Close()

	f, err := Parse(file)
	require.NoError(t, err)
	return f
}

func TestParse_SampleFixture(t *testing.T) {
	f := loadSample(t)

	require.Len(t, f.Doctors, 2)
	require.Len(t, f.Subjects, 2)
	assert.Equal(t, "Cardiology", f.Subjects[0].Name)
	require.Len(t, f.Subjects[0].MCQs[0].Questions, 2)
	assert.True(t, f.Subjects[0].MCQs[0].Questions[0].Options[1].Correct)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("subjects:\n  - name: A\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParse_RejectsTwoCorrectOptions(t *testing.T) {
	doc := `
subjects:
  - name: A
    mcqs:
      - title: T
        questions:
          - text: Q
            options:
              - text: x
                correct: true
              - text: y
                correct: true
`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one correct option")
}

func TestParse_RejectsUndeclaredDoctor(t *testing.T) {
	doc := `
subjects:
  - name: A
    videos:
      - title: V
        url: https://v.example
        doctor: Dr. Nobody
`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dr. Nobody")
}

func TestParse_EmptyDocument(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Subjects)
}

func TestLoader_Load(t *testing.T) {
	// Arrange: кардиология уже есть, один врач уже есть
	f := loadSample(t)
	catalog := new(mockCatalog)
	rec := &recorder{}

	catalog.On("ListDoctors", mock.Anything).Return([]entity.Doctor{{ID: 7, Name: "Dr. Leon Hart"}}, nil).Once()
	catalog.On("CreateDoctor", mock.Anything, "Dr. Amina Yusuf").Return(&entity.Doctor{ID: 8, Name: "Dr. Amina Yusuf"}, nil).Once()
	catalog.On("ListSubjects", mock.Anything).Return([]entity.Subject{{ID: 1, Name: "Cardiology"}}, nil).Once()
	catalog.On("CreateSubject", mock.Anything, "Respiratory").Return(&entity.Subject{ID: 2, Name: "Respiratory"}, nil).Once()

	loader := NewLoader(catalog, rec, rec, rec)

	// Act
	stats, err := loader.Load(context.Background(), f)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Stats{Doctors: 1, Subjects: 1, SkippedSubjects: 1, Quizzes: 1, Questions: 1, Options: 3, Videos: 1}, stats)

	require.Len(t, rec.videos, 1)
	require.NotNil(t, rec.videos[0].DoctorID)
	assert.Equal(t, uint(7), *rec.videos[0].DoctorID, "существующий врач переиспользуется")
	assert.Equal(t, uint(2), *rec.quizzes[0].SubjectID)
	catalog.AssertExpectations(t)
}

func TestLoader_Load_StopsOnError(t *testing.T) {
	f := loadSample(t)
	catalog := new(mockCatalog)
	rec := &recorder{failOn: "AV valves"}

	catalog.On("ListDoctors", mock.Anything).Return([]entity.Doctor{}, nil)
	catalog.On("CreateDoctor", mock.Anything, mock.Anything).Return(&entity.Doctor{ID: 1}, nil)
	catalog.On("ListSubjects", mock.Anything).Return([]entity.Subject{}, nil)
	catalog.On("CreateSubject", mock.Anything, "Cardiology").Return(&entity.Subject{ID: 1, Name: "Cardiology"}, nil).Once()

	stats, err := NewLoader(catalog, rec, rec, rec).Load(context.Background(), f)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AV valves")
	assert.Equal(t, 1, stats.Questions)
	catalog.AssertNotCalled(t, "CreateSubject", mock.Anything, "Respiratory")
}
