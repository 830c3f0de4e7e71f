//go:build unit
// +build unit

package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	users       *MockUserRepository
	revocations *MockRevocationRepository
	issuer      *MockTokenIssuer
}

func newTestAuthService(t *testing.T) (*authService, *authMocks) {
	t.Helper()
	m := &authMocks{
		users:       new(MockUserRepository),
		revocations: new(MockRevocationRepository),
		issuer:      new(MockTokenIssuer),
	}
	svc, err := newAuthService(m.users, m.revocations, m.issuer, testutil.SetupTestLogger(t), bcrypt.MinCost)
	require.NoError(t, err)
	return svc, m
}

func hashedUser(t *testing.T, password string) *auth.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &auth.AdminUser{ID: "u1", Email: "admin@example.com", PasswordHash: string(hash), Role: auth.RoleAdmin}
}

func TestAuthService_Login(t *testing.T) {
	svc, m := newTestAuthService(t)
	user := hashedUser(t, "correct horse")
	session := &auth.Session{Token: "tok", Principal: &auth.Principal{UserID: "u1"}}

	m.users.On("GetByEmail", mock.Anything, "admin@example.com").Return(user, nil)
	m.issuer.On("Issue", user).Return(session, nil)

	got, err := svc.Login(context.Background(), " Admin@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
}

func TestAuthService_Login_Mismatch(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.users.On("GetByEmail", mock.Anything, "admin@example.com").Return(hashedUser(t, "correct horse"), nil)
	m.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, content.ErrNotFound)

	_, err := svc.Login(context.Background(), "admin@example.com", "battery staple")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost@example.com", "whatever1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	m.issuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_LogoutRevokes(t *testing.T) {
	svc, m := newTestAuthService(t)
	expires := time.Now().Add(time.Hour)

	m.issuer.On("Parse", "tok").Return(&auth.Principal{UserID: "u1", TokenID: "jti-1", ExpiresAt: expires}, nil)
	m.revocations.On("Revoke", mock.Anything, "jti-1", expires).Return(nil)
	m.revocations.On("PurgeExpired", mock.Anything, mock.Anything).Return(int64(3), nil)

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	m.revocations.AssertExpectations(t)
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.issuer.On("Parse", "garbage").Return(nil, auth.ErrUnauthenticated)

	require.NoError(t, svc.Logout(context.Background(), "garbage"))
	m.revocations.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, m := newTestAuthService(t)
	issued := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	principal := &auth.Principal{UserID: "u1", Email: "admin@example.com", TokenID: "jti-1", Role: auth.RoleEditor, IssuedAt: issued}
	user := &auth.AdminUser{ID: "u1", Email: "admin@example.com", Role: auth.RoleEditor, UpdatedAt: issued.Add(-time.Hour)}

	m.issuer.On("Parse", "tok").Return(principal, nil)
	m.users.On("GetByEmail", mock.Anything, "admin@example.com").Return(user, nil)
	m.revocations.On("IsRevoked", mock.Anything, "jti-1").Return(false, nil).Once()

	got, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, auth.RoleEditor, got.Role)

	m.revocations.On("IsRevoked", mock.Anything, "jti-1").Return(true, nil).Once()
	_, err = svc.Authenticate(context.Background(), "tok")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestAuthService_Authenticate_ChecksAccount(t *testing.T) {
	issued := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		user     *auth.AdminUser
		err      error
		wantErr  error
		wantRole auth.Role
	}{
		{
			name:    "password reset after the token was issued",
			user:    &auth.AdminUser{ID: "u1", Role: auth.RoleEditor, UpdatedAt: issued.Add(2 * time.Second)},
			wantErr: auth.ErrUnauthenticated,
		},
		{
			name:     "reset within the second the token was issued",
			user:     &auth.AdminUser{ID: "u1", Role: auth.RoleEditor, UpdatedAt: issued.Add(500 * time.Millisecond)},
			wantRole: auth.RoleEditor,
		},
		{
			name:     "role changed since login",
			user:     &auth.AdminUser{ID: "u1", Role: auth.RoleAdmin, UpdatedAt: issued.Add(-time.Hour)},
			wantRole: auth.RoleAdmin,
		},
		{
			name:    "account deleted",
			err:     content.ErrNotFound,
			wantErr: auth.ErrUnauthenticated,
		},
		{
			name:    "email reused by another account",
			user:    &auth.AdminUser{ID: "u2", Role: auth.RoleAdmin, UpdatedAt: issued.Add(-time.Hour)},
			wantErr: auth.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t)
			principal := &auth.Principal{UserID: "u1", Email: "ed@example.com", TokenID: "jti-1", Role: auth.RoleEditor, IssuedAt: issued}

			m.issuer.On("Parse", "tok").Return(principal, nil)
			m.revocations.On("IsRevoked", mock.Anything, "jti-1").Return(false, nil)
			m.users.On("GetByEmail", mock.Anything, "ed@example.com").Return(tt.user, tt.err)

			got, err := svc.Authenticate(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, got.Role)
		})
	}
}

func TestAuthService_CreateUser(t *testing.T) {
	svc, m := newTestAuthService(t)
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*auth.AdminUser")).Return(nil)

	user, err := svc.CreateUser(context.Background(), "Editor@Example.com", "long enough", auth.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long enough")))
}

func TestAuthService_CreateUser_Invalid(t *testing.T) {
	svc, m := newTestAuthService(t)

	_, err := svc.CreateUser(context.Background(), "a@example.com", "short", auth.RoleEditor)
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "a@example.com", strings.Repeat("x", 80), auth.RoleEditor)
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "not-an-email", "long enough", auth.RoleEditor)
	assert.ErrorIs(t, err, content.ErrValidation)

	_, err = svc.CreateUser(context.Background(), "a@example.com", "long enough", auth.Role("root"))
	assert.ErrorIs(t, err, content.ErrValidation)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, m := newTestAuthService(t)
	user := hashedUser(t, "old password")
	m.users.On("GetByEmail", mock.Anything, "admin@example.com").Return(user, nil)
	m.users.On("UpdateByID", mock.Anything, user).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "admin@example.com", "new password"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new password")))
}
