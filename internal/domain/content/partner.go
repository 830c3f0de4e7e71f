package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// PartnerCategory groups partner logos on the home page ("Media Partners",
// "Technology Partners"). Its ID is a slug chosen by the editor.
type PartnerCategory struct {
	Record
	Name         string `json:"name" validate:"required,min=1,max=120"`
	DisplayOrder int    `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (c *PartnerCategory) Normalize() {
	c.ID = strings.ToLower(strings.TrimSpace(c.ID))
	c.Name = strings.TrimSpace(c.Name)
}

// Validate for validating PartnerCategory struct
func (c *PartnerCategory) Validate() error {
	if err := validators.Struct(c); err != nil {
		return validationError(err)
	}
	if err := validators.Get().Var(c.ID, "slug"); err != nil {
		return NewValidationError("category id %q must be a lowercase slug", c.ID)
	}
	return nil
}

// PartnerLogo is a single partner brand shown inside a category.
type PartnerLogo struct {
	Record
	CategoryID   string  `json:"categoryId" validate:"required,slug"`
	Name         string  `json:"name" validate:"required,min=1,max=120"`
	ImagePath    string  `json:"imagePath" validate:"required,assetpath"`
	WebsiteURL   *string `json:"websiteUrl,omitempty" validate:"omitempty,weburl"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (l *PartnerLogo) Normalize() {
	l.CategoryID = strings.ToLower(strings.TrimSpace(l.CategoryID))
	l.Name = strings.TrimSpace(l.Name)
	l.ImagePath = strings.TrimSpace(l.ImagePath)
	l.WebsiteURL = trimOptional(l.WebsiteURL)
}

// Validate for validating PartnerLogo struct
func (l *PartnerLogo) Validate() error {
	return validationError(validators.Struct(l))
}

// AssetPaths lists the uploaded files owned by the logo.
func (l *PartnerLogo) AssetPaths() []string {
	return nonEmpty(&l.ImagePath)
}

// PartnerGroup is a category with its logos, as rendered on the home page.
type PartnerGroup struct {
	Category *PartnerCategory `json:"category"`
	Logos    []*PartnerLogo   `json:"logos"`
}
