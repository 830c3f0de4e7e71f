package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures admin session tokens.
type AuthSettings struct {
	SessionSecret string        `env:"SESSION_SECRET,unset" validate:"required,min=32"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"12h" validate:"min=1m"`
	Issuer        string        `env:"ISSUER" envDefault:"appective" validate:"required"`
	CookieName    string        `env:"COOKIE_NAME" envDefault:"appective_session" validate:"required"`
	SecureCookie  bool          `env:"SECURE_COOKIE" envDefault:"true"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
