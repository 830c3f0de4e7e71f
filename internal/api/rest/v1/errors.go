package v1

import (
	"errors"
	"net/http"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, content.ErrValidation),
		errors.Is(err, assets.ErrInvalidArchive),
		errors.Is(err, assets.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, assets.ErrTooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, assets.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, content.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Server errors are logged and
// their details hidden from the client.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "error", err)
		message = http.StatusText(status)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// badRequest rejects malformed input that never reached a service.
func badRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// bindJSON decodes the request body into obj. It answers the request and
// returns false when the body is malformed or too large.
func bindJSON(ctx *gin.Context, log logger.Logger, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			respondError(ctx, log, err)
			return false
		}
		badRequest(ctx, "invalid request body: "+err.Error())
		return false
	}
	return true
}
