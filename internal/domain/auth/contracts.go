package auth

import (
	"context"
	"time"
)

// AuthService signs admins in and out and resolves session tokens.
type AuthService interface {
	// Login checks the credentials and issues a session.
	// It returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout revokes the token until it expires.
	Logout(ctx context.Context, token string) error

	// Authenticate validates a token and returns its principal.
	// It returns ErrUnauthenticated for malformed, expired or revoked tokens.
	Authenticate(ctx context.Context, token string) (*Principal, error)

	// CreateUser adds an admin account.
	CreateUser(ctx context.Context, email, password string, role Role) (*AdminUser, error)

	// ResetPassword replaces the password of an existing account.
	ResetPassword(ctx context.Context, email, password string) error
}

// TokenIssuer signs and parses session tokens.
type TokenIssuer interface {
	Issue(user *AdminUser) (*Session, error)
	Parse(token string) (*Principal, error)
}

// UserRepository defines the interface for AdminUser-related operations
type UserRepository interface {
	Create(ctx context.Context, user *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	UpdateByID(ctx context.Context, user *AdminUser) error
}

// RevocationRepository records logged out tokens.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	// PurgeExpired drops revocations whose token has expired anyway.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
