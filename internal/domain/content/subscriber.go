package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Subscriber is a newsletter signup. Email is unique case-insensitively and
// stored lowercased.
type Subscriber struct {
	Record
	Email  string  `json:"email" validate:"required,email,max=254"`
	Source *string `json:"source,omitempty" validate:"omitempty,max=60"`
}

// NormalizeEmail lowercases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize trims fields.
func (s *Subscriber) Normalize() {
	s.Email = NormalizeEmail(s.Email)
	s.Source = trimOptional(s.Source)
}

// Validate for validating Subscriber struct
func (s *Subscriber) Validate() error {
	return validationError(validators.Struct(s))
}
