package content

import (
	"path"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Game is a showcased game project.
type Game struct {
	Record
	Title        string   `json:"title" validate:"required,min=1,max=160"`
	Description  string   `json:"description" validate:"required,min=1,max=5000"`
	ImagePath    string   `json:"imagePath" validate:"required,assetpath"`
	PlayURL      *string  `json:"playUrl,omitempty" validate:"omitempty,weburl"`
	Platforms    []string `json:"platforms" validate:"max=10,dive,required,max=40"`
	DisplayOrder int      `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (g *Game) Normalize() {
	g.Title = strings.TrimSpace(g.Title)
	g.Description = sanitize.RichText(g.Description)
	g.ImagePath = strings.TrimSpace(g.ImagePath)
	g.PlayURL = trimOptional(g.PlayURL)
	platforms := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		if p = strings.TrimSpace(p); p != "" {
			platforms = append(platforms, p)
		}
	}
	g.Platforms = platforms
}

// Validate for validating Game struct
func (g *Game) Validate() error {
	return validationError(validators.Struct(g))
}

// AssetPaths lists the uploaded files owned by the game.
func (g *Game) AssetPaths() []string {
	return nonEmpty(&g.ImagePath)
}

// WebPortal is a showcased website or portal project.
type WebPortal struct {
	Record
	Title        string  `json:"title" validate:"required,min=1,max=160"`
	Description  string  `json:"description" validate:"required,min=1,max=5000"`
	ImagePath    string  `json:"imagePath" validate:"required,assetpath"`
	SiteURL      *string `json:"siteUrl,omitempty" validate:"omitempty,weburl"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (w *WebPortal) Normalize() {
	w.Title = strings.TrimSpace(w.Title)
	w.Description = sanitize.RichText(w.Description)
	w.ImagePath = strings.TrimSpace(w.ImagePath)
	w.SiteURL = trimOptional(w.SiteURL)
}

// Validate for validating WebPortal struct
func (w *WebPortal) Validate() error {
	return validationError(validators.Struct(w))
}

// AssetPaths lists the uploaded files owned by the portal.
func (w *WebPortal) AssetPaths() []string {
	return nonEmpty(&w.ImagePath)
}

// DigitalMarketingCase is a campaign case study.
type DigitalMarketingCase struct {
	Record
	Title        string  `json:"title" validate:"required,min=1,max=160"`
	Client       string  `json:"client" validate:"required,min=1,max=120"`
	Summary      string  `json:"summary" validate:"required,min=1,max=5000"`
	Results      *string `json:"results,omitempty" validate:"omitempty,max=5000"`
	ImagePath    string  `json:"imagePath" validate:"required,assetpath"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (d *DigitalMarketingCase) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Client = strings.TrimSpace(d.Client)
	d.Summary = sanitize.RichText(d.Summary)
	if d.Results != nil {
		results := sanitize.RichText(*d.Results)
		d.Results = trimOptional(&results)
	}
	d.ImagePath = strings.TrimSpace(d.ImagePath)
}

// Validate for validating DigitalMarketingCase struct
func (d *DigitalMarketingCase) Validate() error {
	return validationError(validators.Struct(d))
}

// AssetPaths lists the uploaded files owned by the case study.
func (d *DigitalMarketingCase) AssetPaths() []string {
	return nonEmpty(&d.ImagePath)
}

// Masthead is an interactive HTML5 ad creative. EntryPath points at the
// index.html extracted from the uploaded ZIP and is rendered in an iframe.
type Masthead struct {
	Record
	Title         string  `json:"title" validate:"required,min=1,max=160"`
	Client        *string `json:"client,omitempty" validate:"omitempty,max=120"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	ThumbnailPath *string `json:"thumbnailPath,omitempty" validate:"omitempty,assetpath"`
	EntryPath     string  `json:"entryPath" validate:"required,assetpath"`
	Width         int     `json:"width" validate:"min=0,max=4000"`
	Height        int     `json:"height" validate:"min=0,max=4000"`
	DisplayOrder  int     `json:"displayOrder" validate:"min=0"`
}

// MastheadEntryFile is the file every masthead archive must carry at its root.
const MastheadEntryFile = "index.html"

// Normalize trims fields.
func (m *Masthead) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
	m.Client = trimOptional(m.Client)
	if m.Description != nil {
		desc := sanitize.PlainText(*m.Description)
		m.Description = trimOptional(&desc)
	}
	m.ThumbnailPath = trimOptional(m.ThumbnailPath)
	m.EntryPath = strings.TrimSpace(m.EntryPath)
}

// Validate for validating Masthead struct
func (m *Masthead) Validate() error {
	if err := validators.Struct(m); err != nil {
		return validationError(err)
	}
	if path.Base(m.EntryPath) != MastheadEntryFile {
		return NewValidationError("entry path must point at %s", MastheadEntryFile)
	}
	return nil
}

// AssetPaths lists the uploaded files owned by the masthead.
func (m *Masthead) AssetPaths() []string {
	return nonEmpty(&m.EntryPath, m.ThumbnailPath)
}
