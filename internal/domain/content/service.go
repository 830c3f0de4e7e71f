package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Service is an agency offering listed on the home page.
type Service struct {
	Record
	Title        string  `json:"title" validate:"required,min=1,max=120"`
	Description  string  `json:"description" validate:"required,min=1,max=5000"`
	IconPath     *string `json:"iconPath,omitempty" validate:"omitempty,assetpath"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields and sanitizes the description markup.
func (s *Service) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = sanitize.RichText(s.Description)
	s.IconPath = trimOptional(s.IconPath)
}

// Validate for validating Service struct
func (s *Service) Validate() error {
	return validationError(validators.Struct(s))
}

// AssetPaths lists the uploaded files owned by the service.
func (s *Service) AssetPaths() []string {
	return nonEmpty(s.IconPath)
}
