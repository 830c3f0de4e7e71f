//go:build unit
// +build unit

package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "appective_session"

// mockServices holds the mocks behind an app.Services built by newMockServices.
type mockServices struct {
	Banner       *app.MockBannerService
	Partners     *app.MockPartnerService
	Categories   *app.MockCRUDService[*content.PartnerCategory]
	Logos        *app.MockCRUDService[*content.PartnerLogo]
	Team         *app.MockCRUDService[*content.TeamMember]
	Services     *app.MockCRUDService[*content.Service]
	SocialLinks  *app.MockCRUDService[*content.SocialLink]
	Jobs         *app.MockCRUDService[*content.JobOpening]
	Games        *app.MockCRUDService[*content.Game]
	WebPortals   *app.MockCRUDService[*content.WebPortal]
	Marketing    *app.MockCRUDService[*content.DigitalMarketingCase]
	Mastheads    *app.MockCRUDService[*content.Masthead]
	Applications *app.MockApplicationService
	Newsletter   *app.MockNewsletterService
	Assets       *app.MockAssetService
	Auth         *app.MockAuthService
	Site         *app.MockSiteService
}

func newMockServices() (*app.Services, *mockServices) {
	m := &mockServices{
		Banner:       new(app.MockBannerService),
		Partners:     new(app.MockPartnerService),
		Categories:   new(app.MockCRUDService[*content.PartnerCategory]),
		Logos:        new(app.MockCRUDService[*content.PartnerLogo]),
		Team:         new(app.MockCRUDService[*content.TeamMember]),
		Services:     new(app.MockCRUDService[*content.Service]),
		SocialLinks:  new(app.MockCRUDService[*content.SocialLink]),
		Jobs:         new(app.MockCRUDService[*content.JobOpening]),
		Games:        new(app.MockCRUDService[*content.Game]),
		WebPortals:   new(app.MockCRUDService[*content.WebPortal]),
		Marketing:    new(app.MockCRUDService[*content.DigitalMarketingCase]),
		Mastheads:    new(app.MockCRUDService[*content.Masthead]),
		Applications: new(app.MockApplicationService),
		Newsletter:   new(app.MockNewsletterService),
		Assets:       new(app.MockAssetService),
		Auth:         new(app.MockAuthService),
		Site:         new(app.MockSiteService),
	}
	services := &app.Services{
		Banner:            m.Banner,
		Partners:          m.Partners,
		PartnerCategories: m.Categories,
		PartnerLogos:      m.Logos,
		TeamMembers:       m.Team,
		Services:          m.Services,
		SocialLinks:       m.SocialLinks,
		Jobs:              m.Jobs,
		Games:             m.Games,
		WebPortals:        m.WebPortals,
		DigitalMarketing:  m.Marketing,
		Mastheads:         m.Mastheads,
		Applications:      m.Applications,
		Newsletter:        m.Newsletter,
		Assets:            m.Assets,
		Auth:              m.Auth,
		Site:              m.Site,
	}
	return services, m
}

// newTestRouter mounts all routes on top of mocked services.
func newTestRouter(t *testing.T) (*gin.Engine, *mockServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services, mocks := newMockServices()
	r := gin.New()
	SetupRoutes(r, services, RouteOptions{
		CookieName:      testCookieName,
		PublicURLPrefix: "/uploads",
		MaxUploadBytes:  1 << 20,
	}, testutil.SetupTestLogger(t))
	return r, mocks
}

// expectSession makes token authenticate as a principal with role.
func (m *mockServices) expectSession(token string, role auth.Role) *auth.Principal {
	principal := &auth.Principal{UserID: "user-1", Email: string(role) + "@appective.test", Role: role, TokenID: "jti-" + token}
	m.Auth.On("Authenticate", mock.Anything, token).Return(principal, nil)
	return principal
}

// newTestContext creates a gin context over a recorder for direct handler calls.
func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NotNil(t, c)
	return c, w
}
