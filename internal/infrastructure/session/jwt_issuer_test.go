//go:build unit
// +build unit

package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testSettings() *config.AuthSettings {
	return &config.AuthSettings{
		SessionSecret: testSecret,
		TokenTTL:      time.Hour,
		Issuer:        "appective",
		CookieName:    "appective_session",
	}
}

func testUser() *auth.AdminUser {
	return &auth.AdminUser{ID: "user-1", Email: "admin@appective.net", Role: auth.RoleEditor}
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewJWTIssuer(testSettings())
	require.NoError(t, err)

	session, err := issuer.Issue(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.Principal.TokenID)

	principal, err := issuer.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, "admin@appective.net", principal.Email)
	assert.Equal(t, auth.RoleEditor, principal.Role)
	assert.Equal(t, session.Principal.TokenID, principal.TokenID)
	assert.True(t, principal.ExpiresAt.Equal(session.Principal.ExpiresAt))
	assert.False(t, principal.IssuedAt.IsZero())
	assert.True(t, principal.IssuedAt.Equal(session.Principal.IssuedAt))
}

func TestJWTIssuer_Expired(t *testing.T) {
	now := time.Now()
	issuer, err := newJWTIssuer(testSettings(), func() time.Time { return now })
	require.NoError(t, err)

	session, err := issuer.Issue(testUser())
	require.NoError(t, err)

	issuer.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = issuer.Parse(session.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrUnauthenticated))
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTIssuer_RejectsForeignTokens(t *testing.T) {
	issuer, err := NewJWTIssuer(testSettings())
	require.NoError(t, err)

	other := testSettings()
	other.SessionSecret = strings.Repeat("z", 32)
	otherIssuer, err := NewJWTIssuer(other)
	require.NoError(t, err)
	foreign, err := otherIssuer.Issue(testUser())
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "appective", Subject: "x"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", foreign.Token, unsigned} {
		_, err := issuer.Parse(token)
		assert.True(t, errors.Is(err, auth.ErrUnauthenticated), "token %q", token)
	}
}

func TestNewJWTIssuer_ShortSecret(t *testing.T) {
	settings := testSettings()
	settings.SessionSecret = "short"

	_, err := NewJWTIssuer(settings)
	assert.Error(t, err)
}
