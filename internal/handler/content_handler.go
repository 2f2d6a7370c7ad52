package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/domain/repository"
	"github.com/yourusername/devoyage-api/internal/handler/dto"
	"github.com/yourusername/devoyage-api/internal/handler/helper"
	"github.com/yourusername/devoyage-api/internal/service"
)

// ContentHandler обрабатывает запросы к видео, клиническим случаям и карточкам
type ContentHandler struct {
	videoService     *service.VideoService
	caseService      *service.ClinicalCaseService
	flashcardService *service.FlashcardService
}

// NewContentHandler создает новый обработчик учебных материалов
func NewContentHandler(
	videoService *service.VideoService,
	caseService *service.ClinicalCaseService,
	flashcardService *service.FlashcardService,
) *ContentHandler {
	return &ContentHandler{
		videoService:     videoService,
		caseService:      caseService,
		flashcardService: flashcardService,
	}
}

// ListVideos GET /api/videos/?subject=ID&doctor=ID&is_free=bool
func (h *ContentHandler) ListVideos(c *gin.Context) {
	var filters repository.VideoFilters
	var err error
	if filters.SubjectID, err = helper.OptionalUintQuery(c, "subject"); err != nil {
		respondError(c, err)
		return
	}
	if filters.DoctorID, err = helper.OptionalUintQuery(c, "doctor"); err != nil {
		respondError(c, err)
		return
	}
	if filters.IsFree, err = helper.OptionalBoolQuery(c, "is_free"); err != nil {
		respondError(c, err)
		return
	}

	videos, err := h.videoService.ListVideos(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *ContentHandler) GetVideo(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *ContentHandler) CreateVideo(c *gin.Context) {
	var req dto.VideoRequest
	if !bindJSON(c, &req) {
		return
	}
	video, err := h.videoService.CreateVideo(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *ContentHandler) UpdateVideo(c *gin.Context) {
	var req dto.VideoRequest
	if !bindJSON(c, &req) {
		return
	}
	video, err := h.videoService.UpdateVideo(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *ContentHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoService.DeleteVideo(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListClinicalCases GET /api/clinical-cases/?subject=ID&doctor=ID, новые первыми
func (h *ContentHandler) ListClinicalCases(c *gin.Context) {
	var filters repository.ClinicalCaseFilters
	var err error
	if filters.SubjectID, err = helper.OptionalUintQuery(c, "subject"); err != nil {
		respondError(c, err)
		return
	}
	if filters.DoctorID, err = helper.OptionalUintQuery(c, "doctor"); err != nil {
		respondError(c, err)
		return
	}

	cases, err := h.caseService.ListCases(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cases)
}

func (h *ContentHandler) GetClinicalCase(c *gin.Context) {
	cc, err := h.caseService.GetCase(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cc)
}

func (h *ContentHandler) CreateClinicalCase(c *gin.Context) {
	var req dto.ClinicalCaseRequest
	if !bindJSON(c, &req) {
		return
	}
	cc, err := h.caseService.CreateCase(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cc)
}

func (h *ContentHandler) UpdateClinicalCase(c *gin.Context) {
	var req dto.ClinicalCaseRequest
	if !bindJSON(c, &req) {
		return
	}
	cc, err := h.caseService.UpdateCase(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cc)
}

func (h *ContentHandler) DeleteClinicalCase(c *gin.Context) {
	if err := h.caseService.DeleteCase(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFlashcards GET /api/flashcards/?subject=ID, новые первыми
func (h *ContentHandler) ListFlashcards(c *gin.Context) {
	subjectID, err := helper.OptionalUintQuery(c, "subject")
	if err != nil {
		respondError(c, err)
		return
	}
	flashcards, err := h.flashcardService.ListFlashcards(c.Request.Context(), subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flashcards)
}

func (h *ContentHandler) GetFlashcard(c *gin.Context) {
	flashcard, err := h.flashcardService.GetFlashcard(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flashcard)
}

func (h *ContentHandler) CreateFlashcard(c *gin.Context) {
	var req dto.FlashcardRequest
	if !bindJSON(c, &req) {
		return
	}
	flashcard, err := h.flashcardService.CreateFlashcard(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flashcard)
}

// UpdateFlashcard обрабатывает PUT и PATCH; переданный список images заменяет текущий
func (h *ContentHandler) UpdateFlashcard(c *gin.Context) {
	var req dto.FlashcardRequest
	if !bindJSON(c, &req) {
		return
	}
	flashcard, err := h.flashcardService.UpdateFlashcard(c.Request.Context(), pathID(c), req.ToInput(), isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flashcard)
}

func (h *ContentHandler) DeleteFlashcard(c *gin.Context) {
	if err := h.flashcardService.DeleteFlashcard(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
