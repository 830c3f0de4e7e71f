//go:build unit
// +build unit

package commands

import (
	"context"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the role", func(t *testing.T) {
		authService := &app.MockAuthService{}
		user := &auth.AdminUser{Email: "ops@appective.test", Role: auth.RoleAdmin}
		authService.On("CreateUser", ctx, "ops@appective.test", "long-password", auth.RoleAdmin).Return(user, nil)

		created, err := createAdmin(ctx, authService, "ops@appective.test", "long-password", " Admin ")
		require.NoError(t, err)
		assert.Equal(t, user, created)
		authService.AssertExpectations(t)
	})

	t.Run("unknown role", func(t *testing.T) {
		authService := &app.MockAuthService{}

		_, err := createAdmin(ctx, authService, "ops@appective.test", "long-password", "owner")
		assert.Error(t, err)
		authService.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPassword(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "create"}
		cmd.Flags().String("password", "", "")
		return cmd
	}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(passwordEnv, "from-env-123")
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("password", "from-flag-123"))

		value, err := password(cmd)
		require.NoError(t, err)
		assert.Equal(t, "from-flag-123", value)
	})

	t.Run("falls back to environment", func(t *testing.T) {
		t.Setenv(passwordEnv, "from-env-123")

		value, err := password(newCmd())
		require.NoError(t, err)
		assert.Equal(t, "from-env-123", value)
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(passwordEnv, "")

		_, err := password(newCmd())
		assert.Error(t, err)
	})
}

func TestInitCommands(t *testing.T) {
	root := &cobra.Command{Use: "appective-cli"}
	require.NoError(t, InitMigrateCommands(root))
	require.NoError(t, InitAdminCommands(root))
	require.NoError(t, InitSeedCommands(root))

	for _, path := range [][]string{{"migrate"}, {"admin", "create"}, {"admin", "reset-password"}, {"seed"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
