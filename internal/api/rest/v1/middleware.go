package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// principalKey stores the authenticated principal in the gin context.
const principalKey = "principal"

// SessionToken returns the bearer token of the request, falling back to the
// session cookie.
func SessionToken(ctx *gin.Context, cookieName string) string {
	if header := ctx.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := ctx.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// PrincipalFrom returns the principal set by RequireRole.
func PrincipalFrom(ctx *gin.Context) *auth.Principal {
	if v, ok := ctx.Get(principalKey); ok {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}

// RequireRole rejects requests without a valid session (401) or whose
// principal lacks every one of roles (403).
func RequireRole(authService auth.AuthService, cookieName string, log logger.Logger, roles ...auth.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := SessionToken(ctx, cookieName)
		if token == "" {
			respondError(ctx, log, auth.ErrUnauthenticated)
			return
		}

		principal, err := authService.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, log, err)
			return
		}
		if !principal.HasRole(roles...) {
			log.Warn("Forbidden request", "userId", principal.UserID, "role", principal.Role, "path", ctx.FullPath())
			respondError(ctx, log, auth.ErrForbidden)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// LimitBody caps request bodies at n bytes.
func LimitBody(n int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, n)
		ctx.Next()
	}
}

// RequestLogger logs each request once it has been served.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		args := []interface{}{
			"Handled request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"clientIp", ctx.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error(args...)
		case status >= http.StatusBadRequest:
			log.Warn(args...)
		default:
			log.Info(args...)
		}
	}
}
