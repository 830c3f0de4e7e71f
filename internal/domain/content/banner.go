package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// BannerID is the fixed identifier of the top banner singleton.
const BannerID = "top"

// DefaultBannerColor is used when an editor leaves the color empty.
const DefaultBannerColor = "#111827"

// Banner is the announcement strip shown above the site header.
type Banner struct {
	Record
	Text            string  `json:"text" validate:"required,min=1,max=280"`
	LinkURL         *string `json:"linkUrl,omitempty" validate:"omitempty,weburl"`
	LinkLabel       *string `json:"linkLabel,omitempty" validate:"omitempty,max=60"`
	BackgroundColor string  `json:"backgroundColor" validate:"required,hexcolor"`
	IsActive        bool    `json:"isActive"`
}

// NewDefaultBanner returns the inactive banner served before an editor saves one.
func NewDefaultBanner() *Banner {
	return &Banner{
		Record:          Record{ID: BannerID},
		BackgroundColor: DefaultBannerColor,
	}
}

// Normalize trims fields and fills defaults.
func (b *Banner) Normalize() {
	b.ID = BannerID
	b.Text = sanitize.PlainText(b.Text)
	b.LinkURL = trimOptional(b.LinkURL)
	b.LinkLabel = trimOptional(b.LinkLabel)
	b.BackgroundColor = strings.TrimSpace(b.BackgroundColor)
	if b.BackgroundColor == "" {
		b.BackgroundColor = DefaultBannerColor
	}
}

// Validate for validating Banner struct
func (b *Banner) Validate() error {
	return validationError(validators.Struct(b))
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
