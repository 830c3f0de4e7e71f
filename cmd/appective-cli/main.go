// Package main is the entry point for the appective-cli application.
// It registers the maintenance sub-commands (migrate, admin, seed) on the
// root command and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/cmd/appective-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "appective-cli",
		Short: "Maintenance tool for the Appective site",
		Long: `appective-cli prepares and maintains the database behind the Appective site.
It applies schema migrations, manages dashboard accounts and loads initial
content from a YAML file.

Configuration is read from the environment, optionally loaded from the file
given with --env-file (default .env).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.EnvFileFlag, ".env", "Path to an env file with DB_*, STORAGE_* and AUTH_* settings")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
