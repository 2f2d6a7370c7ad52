package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/handler/dto"
	"github.com/yourusername/devoyage-api/internal/service"
)

// CatalogHandler обрабатывает запросы к справочникам предметов и врачей
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler создает новый обработчик справочников
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListSubjects GET /api/subjects/
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListSubjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

func (h *CatalogHandler) GetSubject(c *gin.Context) {
	subject, err := h.catalogService.GetSubject(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	subject, err := h.catalogService.CreateSubject(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subject)
}

func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	subject, err := h.catalogService.UpdateSubject(c.Request.Context(), pathID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

// DeleteSubject удаляет предмет вместе со всем его содержимым
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	if err := h.catalogService.DeleteSubject(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListDoctors GET /api/doctors/
func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.catalogService.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.catalogService.GetDoctor(c.Request.Context(), pathID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *CatalogHandler) CreateDoctor(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	doctor, err := h.catalogService.CreateDoctor(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *CatalogHandler) UpdateDoctor(c *gin.Context) {
	var req dto.NameRequest
	if !bindJSON(c, &req) {
		return
	}
	doctor, err := h.catalogService.UpdateDoctor(c.Request.Context(), pathID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// DeleteDoctor удаляет врача и его клинические случаи; видео остаются без автора
func (h *CatalogHandler) DeleteDoctor(c *gin.Context) {
	if err := h.catalogService.DeleteDoctor(c.Request.Context(), pathID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
