//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", content.NewValidationError("bad"), http.StatusBadRequest},
		{"missing entry", assets.ErrMissingEntry, http.StatusBadRequest},
		{"invalid path", fmt.Errorf("wrap: %w", assets.ErrInvalidPath), http.StatusBadRequest},
		{"too large", assets.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{"body too large", fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 10}), http.StatusRequestEntityTooLarge},
		{"unsupported media", assets.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no session", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"not found", fmt.Errorf("job 1: %w", content.ErrNotFound), http.StatusNotFound},
		{"conflict", content.ErrConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
