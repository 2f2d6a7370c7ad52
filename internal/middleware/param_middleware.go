package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam извлекает числовой идентификатор из пути и сохраняет его в контексте Gin
// под ключом contextKey как uint.
// Нечисловой, нулевой или слишком большой идентификатор не может указывать на запись,
// поэтому ответ 404, как и для несуществующей записи.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found."})
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
