package content

import "context"

// HomePage aggregates every section rendered on the public home page.
type HomePage struct {
	Banner      *Banner
	Services    []*Service
	Partners    []*PartnerGroup
	Team        []*TeamMember
	Games       []*Game
	WebPortals  []*WebPortal
	Marketing   []*DigitalMarketingCase
	Mastheads   []*Masthead
	SocialLinks []*SocialLink
}

// SiteService reads content for the public pages.
type SiteService interface {
	// HomePage loads all home page sections concurrently.
	HomePage(ctx context.Context) (*HomePage, error)
	// Careers lists active job openings.
	Careers(ctx context.Context) ([]*JobOpening, error)
	// Masthead returns a single masthead for the viewer page.
	Masthead(ctx context.Context, id string) (*Masthead, error)
	// SocialLinks lists links for the footer of secondary pages.
	SocialLinks(ctx context.Context) ([]*SocialLink, error)
}
