package dto

import (
	"github.com/yourusername/devoyage-api/internal/domain/entity"
	"github.com/yourusername/devoyage-api/internal/service"
)

// OptionRequest тело запроса для создания и обновления варианта
type OptionRequest struct {
	Question  *uint   `json:"question"`
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"is_correct"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r OptionRequest) ToInput() service.OptionInput {
	return service.OptionInput{QuestionID: r.Question, Text: r.Text, IsCorrect: r.IsCorrect}
}

// NestedOptionRequest вариант, создаваемый вместе с вопросом
type NestedOptionRequest struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"is_correct"`
}

// QuestionRequest тело запроса для вопроса
type QuestionRequest struct {
	MCQ     *uint                 `json:"mcq"`
	Text    *string               `json:"text"`
	Options []NestedOptionRequest `json:"options"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r QuestionRequest) ToInput() service.QuestionInput {
	in := service.QuestionInput{QuizID: r.MCQ, Text: r.Text}
	for _, o := range r.Options {
		in.Options = append(in.Options, service.OptionInput{Text: o.Text, IsCorrect: o.IsCorrect})
	}
	return in
}

// QuizRequest тело запроса для викторины (MCQ)
type QuizRequest struct {
	Subject *uint   `json:"subject"`
	Title   *string `json:"title"`
	IsFree  *bool   `json:"is_free"`
	Logo    *string `json:"logo"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r QuizRequest) ToInput() service.QuizInput {
	return service.QuizInput{SubjectID: r.Subject, Title: r.Title, IsFree: r.IsFree, Logo: r.Logo}
}

// OptionResponse представление варианта ответа
type OptionResponse struct {
	ID        uint   `json:"id"`
	Question  uint   `json:"question"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionResponse представление вопроса с вариантами
type QuestionResponse struct {
	ID      uint             `json:"id"`
	MCQ     uint             `json:"mcq"`
	Text    string           `json:"text"`
	Options []OptionResponse `json:"options"`
}

// QuizResponse представление викторины
type QuizResponse struct {
	ID      uint   `json:"id"`
	Subject uint   `json:"subject"`
	Title   string `json:"title"`
	IsFree  bool   `json:"is_free"`
	Logo    string `json:"logo"`
}

// NewOptionResponse создает DTO для варианта
func NewOptionResponse(o *entity.Option) OptionResponse {
	return OptionResponse{ID: o.ID, Question: o.QuestionID, Text: o.Text, IsCorrect: o.IsCorrect}
}

// NewOptionListResponse создает DTO для списка вариантов
func NewOptionListResponse(options []entity.Option) []OptionResponse {
	result := make([]OptionResponse, len(options))
	for i := range options {
		result[i] = NewOptionResponse(&options[i])
	}
	return result
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:      q.ID,
		MCQ:     q.QuizID,
		Text:    q.Text,
		Options: NewOptionListResponse(q.Options),
	}
}

// NewQuestionListResponse создает DTO для списка вопросов
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, len(questions))
	for i := range questions {
		result[i] = NewQuestionResponse(&questions[i])
	}
	return result
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(q *entity.Quiz) QuizResponse {
	return QuizResponse{ID: q.ID, Subject: q.SubjectID, Title: q.Title, IsFree: q.IsFree, Logo: q.Logo}
}

// NewQuizListResponse создает DTO для списка викторин
func NewQuizListResponse(quizzes []entity.Quiz) []QuizResponse {
	result := make([]QuizResponse, len(quizzes))
	for i := range quizzes {
		result[i] = NewQuizResponse(&quizzes[i])
	}
	return result
}
