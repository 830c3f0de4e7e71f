package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// TeamMember is a person shown in the "Our Team" section.
type TeamMember struct {
	Record
	Name         string  `json:"name" validate:"required,min=1,max=120"`
	Role         string  `json:"role" validate:"required,min=1,max=120"`
	ImagePath    string  `json:"imagePath" validate:"required,assetpath"`
	LinkedInURL  *string `json:"linkedinUrl,omitempty" validate:"omitempty,weburl"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (m *TeamMember) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	m.ImagePath = strings.TrimSpace(m.ImagePath)
	m.LinkedInURL = trimOptional(m.LinkedInURL)
	if m.Bio != nil {
		bio := sanitize.PlainText(*m.Bio)
		m.Bio = trimOptional(&bio)
	}
}

// Validate for validating TeamMember struct
func (m *TeamMember) Validate() error {
	return validationError(validators.Struct(m))
}

// AssetPaths lists the uploaded files owned by the member.
func (m *TeamMember) AssetPaths() []string {
	return nonEmpty(&m.ImagePath)
}
