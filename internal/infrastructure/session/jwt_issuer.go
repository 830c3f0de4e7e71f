// Package session signs and verifies admin session tokens as HS256 JWTs.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims is the claims type carried by session tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

type jwtIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer creates a TokenIssuer signing with the configured session secret.
func NewJWTIssuer(settings *config.AuthSettings) (auth.TokenIssuer, error) {
	return newJWTIssuer(settings, time.Now)
}

func newJWTIssuer(settings *config.AuthSettings, now func() time.Time) (*jwtIssuer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &jwtIssuer{
		secret: []byte(settings.SessionSecret),
		issuer: settings.Issuer,
		ttl:    settings.TokenTTL,
		now:    now,
	}, nil
}

func (i *jwtIssuer) Issue(user *auth.AdminUser) (*auth.Session, error) {
	if user == nil || user.ID == "" {
		return nil, errors.New("cannot issue a session without a user")
	}

	issuedAt := i.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(i.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Email: user.Email,
		Role:  string(user.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &auth.Session{
		Token: signed,
		Principal: &auth.Principal{
			UserID:    user.ID,
			Email:     user.Email,
			Role:      user.Role,
			TokenID:   claims.ID,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}, nil
}

func (i *jwtIssuer) Parse(token string) (*auth.Principal, error) {
	if token == "" {
		return nil, auth.ErrUnauthenticated
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", auth.ErrUnauthenticated, describe(err))
	}

	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: token is missing jti or sub", auth.ErrUnauthenticated)
	}
	role, err := auth.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrUnauthenticated, err)
	}

	principal := &auth.Principal{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	return principal, nil
}

// describe turns jwt library errors into short reasons for logs.
func describe(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature invalid"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "signing method not accepted"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "issuer mismatch"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "token invalid"
	}
}
