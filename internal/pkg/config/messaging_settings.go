package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MessagingSettings configures the optional notification broker.
// An empty URL disables publishing to a broker.
type MessagingSettings struct {
	URL      string `env:"URL,unset" validate:"omitempty,url"`
	Exchange string `env:"EXCHANGE" envDefault:"appective.events" validate:"required"`
}

// Enabled reports whether a broker URL was configured.
func (s *MessagingSettings) Enabled() bool {
	return s.URL != ""
}

// Validate checks that all fields in MessagingSettings are valid
func (s *MessagingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MessagingSettings: %w", err)
	}

	return nil
}
