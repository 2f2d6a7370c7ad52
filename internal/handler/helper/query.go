package helper

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

// OptionalUintQuery читает необязательный числовой параметр строки запроса (?mcq=1)
func OptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.NewValidationError(name, fmt.Sprintf("Select a valid choice. %q is not a valid id.", raw))
	}
	id := uint(v)
	return &id, nil
}

// OptionalBoolQuery читает необязательный логический параметр (?is_free=true|false|1|0)
func OptionalBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "Enter a valid boolean.")
	}
	return &v, nil
}
