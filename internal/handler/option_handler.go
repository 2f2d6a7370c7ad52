package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/handler/dto"
	"github.com/yourusername/devoyage-api/internal/handler/helper"
	"github.com/yourusername/devoyage-api/internal/service"
)

// OptionHandler обрабатывает запросы к вариантам ответа
type OptionHandler struct {
	optionService *service.OptionService
}

// NewOptionHandler создает новый обработчик вариантов ответа
func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

// ListOptions GET /api/options/?question=ID
func (h *OptionHandler) ListOptions(c *gin.Context) {
	questionID, err := helper.OptionalUintQuery(c, "question")
	if err != nil {
		respondError(c, err)
		return
	}
	options, err := h.optionService.ListOptions(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOptionListResponse(options))
}

// CreateOption создает вариант. Второй правильный вариант у вопроса дает 409 с field=is_correct.
func (h *OptionHandler) CreateOption(c *gin.Context) {
	var req dto.OptionRequest
	if !bindJSON(c, &req) {
		return
	}
	option, err := h.optionService.CreateOption(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOptionResponse(option))
}

func (h *OptionHandler) GetOption(c *gin.Context) {
	option, err := h.optionService.GetOption(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOptionResponse(option))
}

// UpdateOption обрабатывает PUT и PATCH
func (h *OptionHandler) UpdateOption(c *gin.Context) {
	var req dto.OptionRequest
	if !bindJSON(c, &req) {
		return
	}
	option, err := h.optionService.UpdateOption(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOptionResponse(option))
}

func (h *OptionHandler) DeleteOption(c *gin.Context) {
	if err := h.optionService.DeleteOption(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
