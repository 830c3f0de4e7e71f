//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBannerHandler_Get(t *testing.T) {
	svc := new(app.MockBannerService)
	handler := NewBannerHandler(svc, testutil.SetupTestLogger(t))
	svc.On("Get", mock.Anything).Return(content.NewDefaultBanner(), nil)

	c, w := newTestContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/banner", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)
	assert.Contains(t, w.Body.String(), content.DefaultBannerColor)
}

func TestBannerHandler_Save(t *testing.T) {
	svc := new(app.MockBannerService)
	handler := NewBannerHandler(svc, testutil.SetupTestLogger(t))
	svc.On("Save", mock.Anything, mock.MatchedBy(func(b *content.Banner) bool {
		return b.Text == "We are hiring" && b.IsActive
	})).Return(&content.Banner{Record: content.Record{ID: content.BannerID}, Text: "We are hiring", IsActive: true}, nil)

	c, w := newTestContext(t)
	c.Request, _ = http.NewRequest(http.MethodPut, "/banner", strings.NewReader(`{"text":"We are hiring","isActive":true}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestBannerHandler_Save_Invalid(t *testing.T) {
	svc := new(app.MockBannerService)
	handler := NewBannerHandler(svc, testutil.SetupTestLogger(t))
	svc.On("Save", mock.Anything, mock.Anything).Return(nil, content.NewValidationError("text is required"))

	c, w := newTestContext(t)
	c.Request, _ = http.NewRequest(http.MethodPut, "/banner", strings.NewReader(`{"isActive":true}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Save(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPartnerHandler_ListGroups(t *testing.T) {
	svc := new(app.MockPartnerService)
	handler := NewPartnerHandler(svc, testutil.SetupTestLogger(t))
	svc.On("ListGroups", mock.Anything).Return([]*content.PartnerGroup{
		{Category: &content.PartnerCategory{Record: content.Record{ID: "media"}, Name: "Media"}, Logos: []*content.PartnerLogo{}},
	}, nil).Once()
	svc.On("ListGroups", mock.Anything).Return(nil, errors.New("db down")).Once()

	c, w := newTestContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/partners", nil)
	handler.ListGroups(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Media")

	c, w = newTestContext(t)
	c.Request, _ = http.NewRequest(http.MethodGet, "/partners", nil)
	handler.ListGroups(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
