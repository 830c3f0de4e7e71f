package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"

	"github.com/spf13/cobra"
)

// passwordEnv is read when --password is omitted, keeping it out of shell history.
const passwordEnv = "APPECTIVE_ADMIN_PASSWORD"

// AdminCommandHandler manages dashboard accounts via CLI.
type AdminCommandHandler struct{}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler instance.
func NewAdminCommandHandler() *AdminCommandHandler {
	return &AdminCommandHandler{}
}

func password(cmd *cobra.Command) (string, error) {
	value, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", fmt.Errorf("invalid password flag: %w", err)
	}
	if value == "" {
		value = os.Getenv(passwordEnv)
	}
	if value == "" {
		return "", fmt.Errorf("--password or %s is required", passwordEnv)
	}
	return value, nil
}

// createAdmin creates the account once the role is known to be valid.
func createAdmin(ctx context.Context, authService auth.AuthService, email, password, role string) (*auth.AdminUser, error) {
	parsed, err := auth.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return authService.CreateUser(ctx, email, password, parsed)
}

// CreateAdminCmd adds a dashboard account
func (commandHandler *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}
	secret, err := password(cmd)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	user, err := createAdmin(cmd.Context(), rt.services.Auth, email, secret, role)
	if err != nil {
		rt.logger.Error("Failed to create account", "email", email, "error", err)
		return err
	}
	rt.logger.Info("Account created", "userId", user.ID, "email", user.Email, "role", user.Role)
	return nil
}

// ResetPasswordCmd replaces the password of an existing dashboard account
func (commandHandler *AdminCommandHandler) ResetPasswordCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	secret, err := password(cmd)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.services.Auth.ResetPassword(cmd.Context(), email, secret); err != nil {
		rt.logger.Error("Failed to reset password", "email", email, "error", err)
		return err
	}
	rt.logger.Info("Password reset", "email", email)
	return nil
}

// InitAdminCommands registers the admin command group.
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler := NewAdminCommandHandler()

	var adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage dashboard accounts",
	}

	var createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a dashboard account",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateAdminCmd,
	}
	createCmd.Flags().StringP("email", "", "", "Email address used to sign in")
	createCmd.Flags().StringP("password", "", "", "Initial password (defaults to $"+passwordEnv+")")
	createCmd.Flags().StringP("role", "", string(auth.RoleEditor), "Account role (admin or editor)")
	if err := createCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	adminCmd.AddCommand(createCmd)

	var resetCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the password of a dashboard account",
		Args:  cobra.NoArgs,
		RunE:  handler.ResetPasswordCmd,
	}
	resetCmd.Flags().StringP("email", "", "", "Email address of the account")
	resetCmd.Flags().StringP("password", "", "", "New password (defaults to $"+passwordEnv+")")
	if err := resetCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	adminCmd.AddCommand(resetCmd)

	rootCmd.AddCommand(adminCmd)
	return nil
}
