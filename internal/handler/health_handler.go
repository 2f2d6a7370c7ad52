package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthHandler проверяет доступность PostgreSQL и Redis
type HealthHandler struct {
	db          *gorm.DB
	redisClient redis.UniversalClient
}

// NewHealthHandler создает обработчик /healthz. redisClient может быть nil.
func NewHealthHandler(db *gorm.DB, redisClient redis.UniversalClient) *HealthHandler {
	return &HealthHandler{db: db, redisClient: redisClient}
}

// Health GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "disabled"}
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Printf("[Health] PostgreSQL недоступен: %v", err)
		status["database"] = "unavailable"
		code = http.StatusServiceUnavailable
	}

	// Недоступность Redis не меняет код ответа
	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("[Health] Redis недоступен: %v", err)
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}

	c.JSON(code, status)
}
