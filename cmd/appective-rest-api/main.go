// cmd/appective-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/api/rest/v1"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/connector"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/messaging"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/session"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/web"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	restConfig, err := config.InitializeRestConfig(envFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	publisher notify.Publisher
	services  *app.Services
}

func (d *appDependencies) close(log logger.Logger) {
	if err := d.publisher.Close(); err != nil {
		log.Warn("Failed to close publisher", "error", err)
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database", "error", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	// Initialize connectors
	publicFiles, err := connector.NewLocalConnector(cfg.Storage.PublicDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create public file connector: %w", err)
	}
	privateFiles, err := connector.NewLocalConnector(cfg.Storage.PrivateDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create private file connector: %w", err)
	}

	issuer, err := session.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	publisher, err := initializePublisher(&cfg.Messaging, log)
	if err != nil {
		return nil, err
	}

	// Initialize services
	services, err := app.NewServices(&app.Stores{
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
		Publisher:         publisher,
	}, &cfg.Storage, log)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:        db,
		publisher: publisher,
		services:  services,
	}, nil
}

// initializePublisher connects to the broker, or logs events when none is configured.
func initializePublisher(settings *config.MessagingSettings, log logger.Logger) (notify.Publisher, error) {
	if !settings.Enabled() {
		log.Info("No message broker configured, notifications are only logged")
		return messaging.NewLogPublisher(log), nil
	}
	publisher, err := messaging.NewPublisher(settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}
	return publisher, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.NewRouteOptions(&cfg.Storage, &cfg.Auth), log)

	// Setup site and dashboard pages
	renderer, err := web.NewRenderer(web.Templates(), map[string]any{
		"siteName": cfg.Server.SiteName,
		"apiBase":  v1.BasePath,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	siteHandler, err := web.NewSiteHandler(deps.services, renderer, cfg.Auth.CookieName, log)
	if err != nil {
		return fmt.Errorf("failed to create site handler: %w", err)
	}
	web.SetupRoutes(r, siteHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// allowsAnyOrigin reports whether origins is the wildcard, which browsers
// refuse to combine with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
