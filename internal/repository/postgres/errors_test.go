package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

func TestTranslateRef_ForeignKeyViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"gorm translated", gorm.ErrForeignKeyViolated},
		{"pgconn", &pgconn.PgError{Code: "23503"}},
		{"lib/pq", &pq.Error{Code: "23503"}},
		{"wrapped", fmt.Errorf("insert question: %w", &pgconn.PgError{Code: "23503"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := translateRef(tc.err, "mcq", 7)

			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			field, ok := apperrors.FieldOf(err)
			assert.True(t, ok)
			assert.Equal(t, "mcq", field)
			assert.Contains(t, err.Error(), "7")
		})
	}
}

func TestTranslateRef_PassesOtherErrors(t *testing.T) {
	other := errors.New("connection reset")

	assert.Same(t, other, translateRef(other, "mcq", 7))
	assert.NoError(t, translateRef(nil, "mcq", 7))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
