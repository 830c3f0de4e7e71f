package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MysqlDbType    = "mysql"
)

// DatabaseSettings describes the relational backend holding site content.
type DatabaseSettings struct {
	Type string `env:"TYPE" envDefault:"sqlite" validate:"required,oneof=sqlite postgres mysql"`
	DSN  string `env:"DSN" validate:"required"`
	// Name is only used for postgres, where the database is created on first connect.
	Name string `env:"NAME"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
