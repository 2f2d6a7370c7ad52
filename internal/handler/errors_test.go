package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/devoyage-api/internal/domain/repository"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
	"github.com/yourusername/devoyage-api/internal/service"
)

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantCode  int
		wantField string
	}{
		{"second correct option", repository.ErrCorrectOptionExists, http.StatusConflict, "is_correct"},
		{"validation", apperrors.NewValidationError("text", "This field may not be blank."), http.StatusBadRequest, "text"},
		{"missing parent in body", fmt.Errorf("create question: %w", apperrors.NewReferenceError("mcq", 9)), http.StatusBadRequest, "mcq"},
		{"missing record", apperrors.ErrNotFound, http.StatusNotFound, ""},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusBadRequest, ""},
		{"unknown", errors.New("driver: bad connection"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/questions/", nil)

			respondError(c, tc.err)

			assert.Equal(t, tc.wantCode, w.Code)
			body := decodeBody(t, w)
			if tc.wantField != "" {
				assert.Equal(t, tc.wantField, body["field"])
			} else {
				assert.NotContains(t, body, "field")
			}
		})
	}
}
