package service

import (
	"context"
	"log"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// MaxQuizTitleLength ограничение длины названия викторины
const MaxQuizTitleLength = 200

// QuizInput данные викторины (MCQ)
type QuizInput struct {
	SubjectID *uint
	Title     *string
	IsFree    *bool
	Logo      *string
}

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	quizRepo repository.QuizRepository
}

// NewQuizService создает новый сервис викторин
func NewQuizService(quizRepo repository.QuizRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

// CreateQuiz создает новую викторину
func (s *QuizService) CreateQuiz(ctx context.Context, in QuizInput) (*entity.Quiz, error) {
	if err := requireID("subject", in.SubjectID); err != nil {
		return nil, err
	}
	if err := requireText("title", in.Title, MaxQuizTitleLength); err != nil {
		return nil, err
	}

	quiz := &entity.Quiz{
		SubjectID: *in.SubjectID,
		Title:     *in.Title,
		IsFree:    pick(in.IsFree, false),
		Logo:      pick(in.Logo, ""),
	}
	if err := checkMaxLen("logo", quiz.Logo, 255); err != nil {
		return nil, err
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	log.Printf("[QuizService] Создана викторина ID=%d: %s", quiz.ID, quiz)
	return quiz, nil
}

// GetQuizByID возвращает викторину по ID
func (s *QuizService) GetQuizByID(ctx context.Context, id uint) (*entity.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

// GetQuizWithQuestions возвращает викторину со всеми вопросами и вариантами
func (s *QuizService) GetQuizWithQuestions(ctx context.Context, id uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(ctx, id)
}

// ListQuizzes возвращает викторины по фильтрам
func (s *QuizService) ListQuizzes(ctx context.Context, filters repository.QuizFilters) ([]entity.Quiz, error) {
	return s.quizRepo.List(ctx, filters)
}

// UpdateQuiz обновляет викторину (PUT или PATCH)
func (s *QuizService) UpdateQuiz(ctx context.Context, id uint, in QuizInput, partial bool) (*entity.Quiz, error) {
	if !partial {
		if err := requireID("subject", in.SubjectID); err != nil {
			return nil, err
		}
		if err := requireText("title", in.Title, MaxQuizTitleLength); err != nil {
			return nil, err
		}
	}

	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quiz.SubjectID = pick(in.SubjectID, quiz.SubjectID)
	quiz.Title = pick(in.Title, quiz.Title)
	quiz.IsFree = pick(in.IsFree, quiz.IsFree)
	quiz.Logo = pick(in.Logo, quiz.Logo)

	if quiz.SubjectID == 0 {
		return nil, apperrors.NewValidationError("subject", msgRequired)
	}
	if err := checkText("title", quiz.Title, MaxQuizTitleLength); err != nil {
		return nil, err
	}
	if err := checkMaxLen("logo", quiz.Logo, 255); err != nil {
		return nil, err
	}

	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz удаляет викторину со всеми вопросами и вариантами
func (s *QuizService) DeleteQuiz(ctx context.Context, id uint) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[QuizService] Удалена викторина ID=%d вместе с вопросами и вариантами", id)
	return nil
}
