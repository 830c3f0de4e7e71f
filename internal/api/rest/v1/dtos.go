package v1

import (
	"fmt"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// StatusResponse describes the session presented with a request.
type StatusResponse struct {
	Authenticated bool       `json:"authenticated"`
	Email         *string    `json:"email,omitempty"`
	Role          *auth.Role `json:"role,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// SubscribeRequest is the body of POST /newsletter/subscribers.
type SubscribeRequest struct {
	Email  string  `json:"email" validate:"required,max=254"`
	Source *string `json:"source,omitempty" validate:"omitempty,max=60"`
}

// Validate for validating SubscribeRequest struct
func (r *SubscribeRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
