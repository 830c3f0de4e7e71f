package v1

import (
	"net/http"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for session routes
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Status(ctx *gin.Context)
}

type authHandler struct {
	authService  auth.AuthService
	cookieName   string
	secureCookie bool
	logger       logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService, cookieName string, secureCookie bool, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService:  authService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

func (handler *authHandler) setCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookieName, value, maxAge, "/", "", handler.secureCookie, true)
}

// Login issues a session token in the body and as an HttpOnly cookie
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindJSON(ctx, handler.logger, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	session, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	principal := session.Principal
	handler.setCookie(ctx, session.Token, int(time.Until(principal.ExpiresAt).Seconds()))
	ctx.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		Email:     principal.Email,
		Role:      principal.Role,
		ExpiresAt: principal.ExpiresAt,
	})
}

// Logout revokes the presented token and clears the cookie
func (handler *authHandler) Logout(ctx *gin.Context) {
	if token := SessionToken(ctx, handler.cookieName); token != "" {
		if err := handler.authService.Logout(ctx, token); err != nil {
			respondError(ctx, handler.logger, err)
			return
		}
	}
	handler.setCookie(ctx, "", -1)
	ctx.Status(http.StatusNoContent)
}

// Status reports whether the request carries a valid session
func (handler *authHandler) Status(ctx *gin.Context) {
	token := SessionToken(ctx, handler.cookieName)
	if token == "" {
		ctx.JSON(http.StatusOK, StatusResponse{})
		return
	}

	principal, err := handler.authService.Authenticate(ctx, token)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			handler.logger.Error("Failed to check session", "error", err)
		}
		ctx.JSON(http.StatusOK, StatusResponse{})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{
		Authenticated: true,
		Email:         &principal.Email,
		Role:          &principal.Role,
		ExpiresAt:     &principal.ExpiresAt,
	})
}
