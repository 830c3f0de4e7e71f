package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Supported social platforms.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "x"
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformBehance   = "behance"
)

// SocialLink is a footer link to one of the agency's social profiles.
type SocialLink struct {
	Record
	Platform     string `json:"platform" validate:"required,oneof=facebook instagram linkedin x youtube tiktok behance"`
	URL          string `json:"url" validate:"required,weburl"`
	DisplayOrder int    `json:"displayOrder" validate:"min=0"`
}

// Normalize trims fields.
func (s *SocialLink) Normalize() {
	s.Platform = strings.ToLower(strings.TrimSpace(s.Platform))
	s.URL = strings.TrimSpace(s.URL)
}

// Validate for validating SocialLink struct
func (s *SocialLink) Validate() error {
	return validationError(validators.Struct(s))
}
