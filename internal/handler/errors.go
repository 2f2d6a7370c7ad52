package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/devoyage-api/internal/middleware"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
	"github.com/yourusername/devoyage-api/internal/service"
)

// respondError преобразует ошибку сервиса в HTTP-ответ.
// Ошибки с полем (FieldError) возвращают {"error", "field"}.
//
//	ErrUniquenessViolation / ErrConflict -> 409
//	ErrValidation                        -> 400
//	ErrNotFound со ссылкой из тела       -> 400 (field указывает на ссылку)
//	ErrNotFound                          -> 404
//	ErrInvalidCredentials                -> 400
//
// 401 и 403 отдает middleware авторизации, сервисы их не возвращают.
func respondError(c *gin.Context, err error) {
	field, hasField := apperrors.FieldOf(err)
	body := gin.H{"error": err.Error()}
	if hasField {
		body["field"] = field
	}

	switch {
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrNotFound) && hasField:
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[Handler] Необработанная ошибка (request_id=%s, %s %s): %v",
			c.GetString(middleware.ContextRequestID), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON разбирает тело запроса; при ошибке отвечает 400
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// pathID возвращает id, извлеченный middleware.ExtractUintParam
func pathID(c *gin.Context) uint {
	return c.MustGet(ctxPathID).(uint)
}

const ctxPathID = "pathID"

// isPartial true для PATCH
func isPartial(c *gin.Context) bool {
	return c.Request.Method == http.MethodPatch
}
