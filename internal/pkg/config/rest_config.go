package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ServerSettings holds HTTP listener options.
type ServerSettings struct {
	Port           string   `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1"`
	SiteName       string   `env:"SITE_NAME" envDefault:"Appective"`
}

// RestConfig aggregates all settings needed by the REST API and site renderer.
type RestConfig struct {
	Server    ServerSettings    `envPrefix:"SERVER_"`
	Database  DatabaseSettings  `envPrefix:"DB_"`
	Logger    LoggerSettings    `envPrefix:"LOG_"`
	Storage   StorageSettings   `envPrefix:"STORAGE_"`
	Auth      AuthSettings      `envPrefix:"AUTH_"`
	Messaging MessagingSettings `envPrefix:"AMQP_"`
}

// Validate checks every settings group.
func (c *RestConfig) Validate() error {
	if err := validator.New().Struct(&c.Server); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Messaging.Validate()
}

// InitializeRestConfig loads envFile (when present) into the process
// environment and parses the configuration from it.
func InitializeRestConfig(envFile string) (*RestConfig, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitializeDatabaseConfig loads only what the CLI needs to reach the database.
func InitializeDatabaseConfig(envFile string) (*DatabaseSettings, *LoggerSettings, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, nil, err
	}

	var db DatabaseSettings
	if err := env.ParseWithOptions(&db, env.Options{Prefix: "DB_"}); err != nil {
		return nil, nil, fmt.Errorf("parse env: %w", err)
	}
	if err := db.Validate(); err != nil {
		return nil, nil, err
	}

	var log LoggerSettings
	if err := env.ParseWithOptions(&log, env.Options{Prefix: "LOG_"}); err != nil {
		return nil, nil, fmt.Errorf("parse env: %w", err)
	}
	if err := log.Validate(); err != nil {
		return nil, nil, err
	}

	return &db, &log, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}
	// Variables already present in the environment win over the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}
