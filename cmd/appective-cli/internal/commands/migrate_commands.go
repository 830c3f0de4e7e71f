package commands

import (
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCmd applies the schema to the configured database.
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	db, log, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database", "error", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		log.Error("Migration failed", "error", err)
		return err
	}
	log.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command.
func InitMigrateCommands(rootCmd *cobra.Command) error {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
