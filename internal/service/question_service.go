package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// QuestionInput данные вопроса. Options используются только при создании.
type QuestionInput struct {
	QuizID  *uint
	Text    *string
	Options []OptionInput
}

// QuestionService управляет вопросами викторин
type QuestionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, quizRepo: quizRepo}
}

// CreateQuestion создает вопрос. Вложенные варианты создаются в той же транзакции;
// вопрос без вариантов допустим.
func (s *QuestionService) CreateQuestion(ctx context.Context, in QuestionInput) (*entity.Question, error) {
	if err := requireID("mcq", in.QuizID); err != nil {
		return nil, err
	}
	if err := requireText("text", in.Text, 0); err != nil {
		return nil, err
	}

	question := &entity.Question{
		QuizID:  *in.QuizID,
		Text:    *in.Text,
		Options: make([]entity.Option, 0, len(in.Options)),
	}
	for i, o := range in.Options {
		if err := requireText(fmt.Sprintf("options[%d].text", i), o.Text, entity.MaxOptionTextLength); err != nil {
			return nil, err
		}
		question.Options = append(question.Options, entity.Option{
			Text:      *o.Text,
			IsCorrect: pick(o.IsCorrect, false),
		})
	}
	if question.CountCorrect() > 1 {
		return nil, repository.ErrCorrectOptionExists
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	log.Printf("[QuestionService] Создан вопрос ID=%d %q в викторине ID=%d (вариантов: %d)",
		question.ID, question.Preview(), question.QuizID, len(question.Options))
	return question, nil
}

// GetQuestion возвращает вопрос с вариантами
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions возвращает вопросы, опционально только одной викторины
func (s *QuestionService) ListQuestions(ctx context.Context, quizID *uint) ([]entity.Question, error) {
	return s.questionRepo.List(ctx, repository.QuestionFilters{QuizID: quizID})
}

// ListQuestionsForQuiz возвращает вопросы викторины с вариантами в порядке создания
func (s *QuestionService) ListQuestionsForQuiz(ctx context.Context, quizID uint) ([]entity.Question, error) {
	quiz, err := s.quizRepo.GetWithQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Questions == nil {
		return []entity.Question{}, nil
	}
	return quiz.Questions, nil
}

// UpdateQuestion обновляет текст и викторину вопроса. Варианты не затрагиваются.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, in QuestionInput, partial bool) (*entity.Question, error) {
	if !partial {
		if err := requireID("mcq", in.QuizID); err != nil {
			return nil, err
		}
		if err := requireText("text", in.Text, 0); err != nil {
			return nil, err
		}
	}

	current, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.QuizID = pick(in.QuizID, current.QuizID)
	current.Text = pick(in.Text, current.Text)
	if current.QuizID == 0 {
		return nil, apperrors.NewValidationError("mcq", msgRequired)
	}
	if err := checkText("text", current.Text, 0); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteQuestion удаляет вопрос вместе со всеми вариантами
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[QuestionService] Удален вопрос ID=%d вместе с вариантами", id)
	return nil
}
