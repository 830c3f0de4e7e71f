package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users       auth.UserRepository
	revocations auth.RevocationRepository
	issuer      auth.TokenIssuer
	logger      logger.Logger
	now         func() time.Time
	cost        int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates the service signing admins in and out
func NewAuthService(users auth.UserRepository, revocations auth.RevocationRepository, issuer auth.TokenIssuer, logger logger.Logger) (auth.AuthService, error) {
	return newAuthService(users, revocations, issuer, logger, bcrypt.DefaultCost)
}

func newAuthService(users auth.UserRepository, revocations auth.RevocationRepository, issuer auth.TokenIssuer, logger logger.Logger, cost int) (*authService, error) {
	if users == nil || revocations == nil || issuer == nil {
		return nil, errors.New("auth service requires user and revocation repositories and a token issuer")
	}
	return &authService{
		users:       users,
		revocations: revocations,
		issuer:      issuer,
		logger:      logger,
		now:         timestamp,
		cost:        cost,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	user, err := s.users.GetByEmail(ctx, content.NormalizeEmail(email))
	if errors.Is(err, content.ErrNotFound) {
		// Spend the same time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		s.logger.Info("Rejected login for unknown account")
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("Rejected login", "userId", user.ID)
		return nil, auth.ErrInvalidCredentials
	}

	session, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	s.logger.Info("Admin signed in", "userId", user.ID, "role", user.Role)
	return session, nil
}

func (s *authService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cost)
	})
	return s.dummyHash
}

// Logout revokes token. Tokens that no longer parse are already unusable.
func (s *authService) Logout(ctx context.Context, token string) error {
	principal, err := s.issuer.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.logger.Info("Admin signed out", "userId", principal.UserID)

	if n, err := s.revocations.PurgeExpired(ctx, s.now()); err != nil {
		s.logger.Warn("Failed to purge expired revocations", "error", err)
	} else if n > 0 {
		s.logger.Debug("Purged expired revocations", "count", n)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	principal, err := s.issuer.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revocations.IsRevoked(ctx, principal.TokenID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: session was signed out", auth.ErrUnauthenticated)
	}

	user, err := s.users.GetByEmail(ctx, principal.Email)
	if errors.Is(err, content.ErrNotFound) {
		return nil, fmt.Errorf("%w: account no longer exists", auth.ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}
	if user.ID != principal.UserID {
		return nil, fmt.Errorf("%w: account no longer exists", auth.ErrUnauthenticated)
	}
	// Tokens carry whole seconds, so a reset invalidates sessions issued in
	// earlier seconds.
	if principal.IssuedAt.Before(user.UpdatedAt.Truncate(time.Second)) {
		return nil, fmt.Errorf("%w: session predates the last account change", auth.ErrUnauthenticated)
	}
	principal.Role = user.Role
	return principal, nil
}

func (s *authService) hash(password string) (string, error) {
	if len(password) < auth.MinPasswordLength {
		return "", content.NewValidationError("password must have at least %d characters", auth.MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", content.NewValidationError("password must not exceed 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) CreateUser(ctx context.Context, email, password string, role auth.Role) (*auth.AdminUser, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	now := s.now()
	user := &auth.AdminUser{
		ID:           uuid.NewString(),
		Email:        content.NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrValidation, err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("Created admin account", "userId", user.ID, "role", user.Role)
	return user, nil
}

func (s *authService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, content.NormalizeEmail(email))
	if err != nil {
		return err
	}
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now()
	if err := s.users.UpdateByID(ctx, user); err != nil {
		return err
	}
	s.logger.Info("Reset admin password", "userId", user.ID)
	return nil
}
