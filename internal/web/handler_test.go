//go:build unit
// +build unit

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookie = "appective_session"

type siteMocks struct {
	site         *app.MockSiteService
	banner       *app.MockBannerService
	auth         *app.MockAuthService
	jobs         *app.MockCRUDService[*content.JobOpening]
	applications *app.MockApplicationService
}

func newTestSite(t *testing.T) (*gin.Engine, *siteMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &siteMocks{
		site:         new(app.MockSiteService),
		banner:       new(app.MockBannerService),
		auth:         new(app.MockAuthService),
		jobs:         new(app.MockCRUDService[*content.JobOpening]),
		applications: new(app.MockApplicationService),
	}
	services := &app.Services{
		Site:         m.site,
		Banner:       m.banner,
		Auth:         m.auth,
		Jobs:         m.jobs,
		Applications: m.applications,
	}

	handler, err := NewSiteHandler(services, newTestRenderer(t), testCookie, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, handler)
	return r, m
}

func get(r *gin.Engine, url, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewSiteHandler_RequiresServices(t *testing.T) {
	_, err := NewSiteHandler(&app.Services{}, newTestRenderer(t), testCookie, testutil.SetupTestLogger(t))
	require.Error(t, err)
}

func TestSiteHandler_Home(t *testing.T) {
	r, m := newTestSite(t)
	m.site.On("HomePage", mock.Anything).Return(&content.HomePage{
		Banner:   content.NewDefaultBanner(),
		Services: []*content.Service{{Title: "Performance marketing"}},
	}, nil)

	w := get(r, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Performance marketing")
}

func TestSiteHandler_Home_Error(t *testing.T) {
	r, m := newTestSite(t)
	m.site.On("HomePage", mock.Anything).Return(nil, errors.New("db down"))

	w := get(r, "/", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestSiteHandler_Careers(t *testing.T) {
	r, m := newTestSite(t)
	m.site.On("Careers", mock.Anything).Return([]*content.JobOpening{{Record: content.Record{ID: "j1"}, Title: "Copywriter"}}, nil)
	m.site.On("SocialLinks", mock.Anything).Return([]*content.SocialLink{{Platform: "linkedin", URL: "https://linkedin.com/company/appective"}}, nil)

	w := get(r, "/careers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Copywriter")
	assert.Contains(t, w.Body.String(), "https://linkedin.com/company/appective")
}

func TestSiteHandler_Masthead(t *testing.T) {
	r, m := newTestSite(t)
	m.site.On("SocialLinks", mock.Anything).Return(nil, errors.New("ignored"))
	m.site.On("Masthead", mock.Anything, "m1").Return(&content.Masthead{
		Record: content.Record{ID: "m1"}, Title: "Summer", EntryPath: "/uploads/mastheads/m1/index.html",
	}, nil)
	m.site.On("Masthead", mock.Anything, "nope").Return(nil, content.ErrNotFound)

	w := get(r, "/mastheads/m1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `src="/uploads/mastheads/m1/index.html"`)

	w = get(r, "/mastheads/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSiteHandler_StaticPages(t *testing.T) {
	r, m := newTestSite(t)
	m.site.On("SocialLinks", mock.Anything).Return([]*content.SocialLink{}, nil)

	for _, url := range []string{"/privacy", "/terms", "/admin/login"} {
		w := get(r, url, "")
		assert.Equal(t, http.StatusOK, w.Code, url)
	}
}

func TestSiteHandler_Healthz(t *testing.T) {
	r, _ := newTestSite(t)

	w := get(r, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSiteHandler_Admin_RedirectsAnonymous(t *testing.T) {
	r, m := newTestSite(t)
	m.auth.On("Authenticate", mock.Anything, "expired").Return(nil, auth.ErrUnauthenticated)

	for _, token := range []string{"", "expired"} {
		w := get(r, "/admin?panel=jobs", token)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
	}
}

func TestSiteHandler_Admin_Panels(t *testing.T) {
	r, m := newTestSite(t)
	m.auth.On("Authenticate", mock.Anything, "editor").Return(&auth.Principal{Email: "editor@appective.test", Role: auth.RoleEditor}, nil)
	m.auth.On("Authenticate", mock.Anything, "admin").Return(&auth.Principal{Email: "admin@appective.test", Role: auth.RoleAdmin}, nil)
	m.jobs.On("List", mock.Anything, mock.Anything).Return([]*content.JobOpening{
		{Record: content.Record{ID: "j1"}, Title: "Designer", Department: "Creative", EmploymentType: "full-time", IsActive: true},
	}, nil)
	m.applications.On("List", mock.Anything, mock.Anything).Return([]*content.JobApplication{
		{Record: content.Record{ID: "a1"}, FullName: "Grace Hopper", Email: "grace@example.com", ResumeName: "cv.pdf"},
	}, nil)
	m.banner.On("Get", mock.Anything).Return(content.NewDefaultBanner(), nil)

	tests := []struct {
		name   string
		url    string
		token  string
		status int
		want   string
	}{
		{"jobs", "/admin?panel=jobs", "editor", http.StatusOK, "Designer"},
		{"banner", "/admin?panel=banner", "editor", http.StatusOK, content.DefaultBannerColor},
		{"applications for editor", "/admin?panel=applications", "editor", http.StatusForbidden, "may not open"},
		{"applications for admin", "/admin?panel=applications", "admin", http.StatusOK, "Grace Hopper"},
		{"unknown panel", "/admin?panel=nope", "admin", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.url, tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.want != "" {
				assert.Contains(t, w.Body.String(), tt.want)
			}
		})
	}
}

func TestRows(t *testing.T) {
	active := []*content.JobOpening{{Record: content.Record{ID: "j1"}, Title: "Designer", IsActive: true}}

	out, err := rows(active, []column{{"Title", "title"}, {"Active", "isActive"}, {"Missing", "nope"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "j1", out[0]["id"])
	assert.Equal(t, []string{"Designer", "yes", ""}, out[0]["cells"])
}
