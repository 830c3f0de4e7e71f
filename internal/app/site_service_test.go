//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type siteMocks struct {
	banner      *MockBannerService
	partners    *MockPartnerService
	services    *MockCRUDService[*content.Service]
	team        *MockCRUDService[*content.TeamMember]
	jobs        *MockCRUDService[*content.JobOpening]
	games       *MockCRUDService[*content.Game]
	portals     *MockCRUDService[*content.WebPortal]
	marketing   *MockCRUDService[*content.DigitalMarketingCase]
	mastheads   *MockCRUDService[*content.Masthead]
	socialLinks *MockCRUDService[*content.SocialLink]
}

func newTestSiteService(t *testing.T) (content.SiteService, *siteMocks) {
	t.Helper()
	m := &siteMocks{
		banner:      new(MockBannerService),
		partners:    new(MockPartnerService),
		services:    new(MockCRUDService[*content.Service]),
		team:        new(MockCRUDService[*content.TeamMember]),
		jobs:        new(MockCRUDService[*content.JobOpening]),
		games:       new(MockCRUDService[*content.Game]),
		portals:     new(MockCRUDService[*content.WebPortal]),
		marketing:   new(MockCRUDService[*content.DigitalMarketingCase]),
		mastheads:   new(MockCRUDService[*content.Masthead]),
		socialLinks: new(MockCRUDService[*content.SocialLink]),
	}
	svc, err := NewSiteService(SiteSources{
		Banner:           m.banner,
		Partners:         m.partners,
		Services:         m.services,
		TeamMembers:      m.team,
		Jobs:             m.jobs,
		Games:            m.games,
		WebPortals:       m.portals,
		DigitalMarketing: m.marketing,
		Mastheads:        m.mastheads,
		SocialLinks:      m.socialLinks,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, m
}

func (m *siteMocks) expectSections(gameErr error) {
	m.banner.On("Get", mock.Anything).Return(&content.Banner{Text: "Hello", IsActive: true}, nil)
	m.partners.On("ListGroups", mock.Anything).Return([]*content.PartnerGroup{{Category: &content.PartnerCategory{Name: "Media"}}}, nil)
	m.services.On("List", mock.Anything, mock.Anything).Return([]*content.Service{{Title: "Branding"}}, nil)
	m.team.On("List", mock.Anything, mock.Anything).Return([]*content.TeamMember{{Name: "Ada"}}, nil)
	if gameErr != nil {
		m.games.On("List", mock.Anything, mock.Anything).Return(nil, gameErr)
	} else {
		m.games.On("List", mock.Anything, mock.Anything).Return([]*content.Game{{Title: "Space Race"}}, nil)
	}
	m.portals.On("List", mock.Anything, mock.Anything).Return([]*content.WebPortal{}, nil)
	m.marketing.On("List", mock.Anything, mock.Anything).Return([]*content.DigitalMarketingCase{{Title: "Launch"}}, nil)
	m.mastheads.On("List", mock.Anything, mock.Anything).Return([]*content.Masthead{{Title: "Summer"}}, nil)
	m.socialLinks.On("List", mock.Anything, mock.Anything).Return([]*content.SocialLink{{Platform: "x"}}, nil)
}

func TestSiteService_HomePage(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc, m := newTestSiteService(t)
	m.expectSections(nil)

	page, err := svc.HomePage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Hello", page.Banner.Text)
	assert.Len(t, page.Partners, 1)
	assert.Equal(t, "Branding", page.Services[0].Title)
	assert.Equal(t, "Ada", page.Team[0].Name)
	assert.Equal(t, "Space Race", page.Games[0].Title)
	assert.Empty(t, page.WebPortals)
	assert.Equal(t, "Launch", page.Marketing[0].Title)
	assert.Equal(t, "Summer", page.Mastheads[0].Title)
	assert.Equal(t, "x", page.SocialLinks[0].Platform)
}

func TestSiteService_HomePage_SectionError(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc, m := newTestSiteService(t)
	boom := errors.New("games table missing")
	m.expectSections(boom)

	_, err := svc.HomePage(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSiteService_Careers_OnlyActive(t *testing.T) {
	svc, m := newTestSiteService(t)
	m.jobs.On("List", mock.Anything, mock.MatchedBy(func(q *content.ListQuery) bool {
		return q.Filters["active"] == "true"
	})).Return([]*content.JobOpening{{Title: "Designer", IsActive: true}}, nil)

	jobs, err := svc.Careers(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestNewSiteService_RequiresAllSources(t *testing.T) {
	_, err := NewSiteService(SiteSources{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
