package commands

import (
	"fmt"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/connector"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/messaging"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/session"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// EnvFileFlag names the persistent flag pointing at the env file.
const EnvFileFlag = "env-file"

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func envFile(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString(EnvFileFlag)
	if err != nil {
		return ""
	}
	return path
}

// openDatabase connects with only the DB_* and LOG_* settings.
func openDatabase(cmd *cobra.Command) (*gorm.DB, logger.Logger, error) {
	dbSettings, logSettings, err := config.InitializeDatabaseConfig(envFile(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(logSettings)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(*dbSettings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, log, nil
}

// runtime is a migrated database with the services on top of it.
type runtime struct {
	db       *gorm.DB
	services *app.Services
	logger   logger.Logger
}

func (r *runtime) close() {
	if err := persistence.CloseDB(r.db); err != nil {
		r.logger.Warn("Failed to close database", "error", err)
	}
}

// openRuntime loads the full configuration and wires the services.
// Notifications are only logged from the CLI.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.InitializeRestConfig(envFile(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	rt := &runtime{db: db, logger: log}

	if err := persistence.Migrate(db); err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}
	publicFiles, err := connector.NewLocalConnector(cfg.Storage.PublicDir, log)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create public file connector: %w", err)
	}
	privateFiles, err := connector.NewLocalConnector(cfg.Storage.PrivateDir, log)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create private file connector: %w", err)
	}
	issuer, err := session.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	rt.services, err = app.NewServices(&app.Stores{
		Banners:           repos.Banners,
		PartnerCategories: repos.PartnerCategories,
		PartnerLogos:      repos.PartnerLogos,
		TeamMembers:       repos.TeamMembers,
		Services:          repos.Services,
		SocialLinks:       repos.SocialLinks,
		Jobs:              repos.Jobs,
		Applications:      repos.Applications,
		Subscribers:       repos.Subscribers,
		Games:             repos.Games,
		WebPortals:        repos.WebPortals,
		DigitalMarketing:  repos.DigitalMarketing,
		Mastheads:         repos.Mastheads,
		Assets:            repos.Assets,
		Users:             repos.Users,
		Revocations:       repos.Revocations,
		PublicFiles:       publicFiles,
		PrivateFiles:      privateFiles,
		Issuer:            issuer,
		Publisher:         messaging.NewLogPublisher(log),
	}, &cfg.Storage, log)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	return rt, nil
}
