package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/handler/dto"
	"github.com/yourusername/devoyage-api/internal/handler/helper"
	"github.com/yourusername/devoyage-api/internal/service"
)

// QuestionHandler обрабатывает запросы к вопросам
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions GET /api/questions/?mcq=ID
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	quizID, err := helper.OptionalUintQuery(c, "mcq")
	if err != nil {
		respondError(c, err)
		return
	}
	questions, err := h.questionService.ListQuestions(c.Request.Context(), quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions))
}

// CreateQuestion создает вопрос, при необходимости вместе с вариантами
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}
	question, err := h.questionService.CreateQuestion(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.questionService.GetQuestion(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// UpdateQuestion обрабатывает PUT и PATCH; варианты меняются через /api/options/
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}
	question, err := h.questionService.UpdateQuestion(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// DeleteQuestion удаляет вопрос и все его варианты
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.questionService.DeleteQuestion(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
