package auth

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Role is the permission level of an admin account.
type Role string

// Supported roles. Admins may do everything, editors manage site content
// and uploads only.
const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// MinPasswordLength is enforced when creating accounts or resetting passwords.
const MinPasswordLength = 8

// Errors returned by authentication.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
)

// ParseRole converts s to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleEditor:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// AdminUser is an account allowed to sign in to the dashboard.
type AdminUser struct {
	ID           string    `validate:"required,uuid4"`
	Email        string    `validate:"required,email,max=254"`
	PasswordHash string    `validate:"required"`
	Role         Role      `validate:"required,oneof=admin editor"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time `validate:"required"`
}

// Validate for validating AdminUser struct
func (u *AdminUser) Validate() error {
	if err := validators.Struct(u); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Principal is the identity carried by a valid session token.
type Principal struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	TokenID   string    `json:"-"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HasRole reports whether the principal may act with one of roles.
// Admins satisfy every role.
func (p *Principal) HasRole(roles ...Role) bool {
	if p == nil {
		return false
	}
	if p.Role == RoleAdmin {
		return true
	}
	return slices.Contains(roles, p.Role)
}

// Session is a freshly issued token and the principal it encodes.
type Session struct {
	Token     string
	Principal *Principal
}
