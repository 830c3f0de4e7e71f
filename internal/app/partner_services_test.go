//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPartnerServices(t *testing.T) (*PartnerServices, *MockRepository[*content.PartnerCategory], *MockRepository[*content.PartnerLogo]) {
	t.Helper()
	categories := new(MockRepository[*content.PartnerCategory])
	logos := new(MockRepository[*content.PartnerLogo])
	svc, err := NewPartnerServices(categories, logos, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, categories, logos
}

func categoryFilter(id string) interface{} {
	return mock.MatchedBy(func(q *content.ListQuery) bool { return q.Filters["categoryId"] == id })
}

func TestPartnerServices_DeleteCategoryWithLogos(t *testing.T) {
	svc, categories, logos := newTestPartnerServices(t)

	categories.On("GetByID", mock.Anything, "media").Return(&content.PartnerCategory{Record: content.Record{ID: "media"}}, nil)
	logos.On("Count", mock.Anything, categoryFilter("media")).Return(int64(2), nil)

	err := svc.Categories.DeleteByID(context.Background(), "media")
	assert.ErrorIs(t, err, content.ErrConflict)
	categories.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestPartnerServices_DeleteEmptyCategory(t *testing.T) {
	svc, categories, logos := newTestPartnerServices(t)

	categories.On("GetByID", mock.Anything, "media").Return(&content.PartnerCategory{Record: content.Record{ID: "media"}}, nil)
	categories.On("DeleteByID", mock.Anything, "media").Return(nil)
	logos.On("Count", mock.Anything, categoryFilter("media")).Return(int64(0), nil)

	require.NoError(t, svc.Categories.DeleteByID(context.Background(), "media"))
	categories.AssertExpectations(t)
}

func TestPartnerServices_LogoRequiresCategory(t *testing.T) {
	svc, categories, logos := newTestPartnerServices(t)

	categories.On("GetByID", mock.Anything, "ghost").Return(nil, content.ErrNotFound)

	_, err := svc.Logos.Create(context.Background(), &content.PartnerLogo{
		CategoryID: "ghost",
		Name:       "Acme",
		ImagePath:  "/uploads/partners/acme.png",
	})
	assert.ErrorIs(t, err, content.ErrValidation)
	logos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPartnerService_ListGroups(t *testing.T) {
	svc, categories, logos := newTestPartnerServices(t)

	media := &content.PartnerCategory{Record: content.Record{ID: "media"}, Name: "Media", DisplayOrder: 0}
	tech := &content.PartnerCategory{Record: content.Record{ID: "tech"}, Name: "Tech", DisplayOrder: 1}
	categories.On("List", mock.Anything, mock.Anything).Return([]*content.PartnerCategory{media, tech}, nil)
	logos.On("List", mock.Anything, mock.Anything).Return([]*content.PartnerLogo{
		{CategoryID: "tech", Name: "Cloud Co"},
		{CategoryID: "media", Name: "Daily News"},
		{CategoryID: "orphan", Name: "Lost"},
		{CategoryID: "media", Name: "Radio One"},
	}, nil)

	groups, err := svc.Groups.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "media", groups[0].Category.ID)
	require.Len(t, groups[0].Logos, 2)
	assert.Equal(t, "Daily News", groups[0].Logos[0].Name)
	assert.Equal(t, "Radio One", groups[0].Logos[1].Name)
	assert.Equal(t, "tech", groups[1].Category.ID)
	assert.Len(t, groups[1].Logos, 1)
}

func TestPartnerService_ListGroups_EmptyCategoryHasNoNilLogos(t *testing.T) {
	svc, categories, logos := newTestPartnerServices(t)

	categories.On("List", mock.Anything, mock.Anything).Return([]*content.PartnerCategory{{Record: content.Record{ID: "media"}}}, nil)
	logos.On("List", mock.Anything, mock.Anything).Return([]*content.PartnerLogo{}, nil)

	groups, err := svc.Groups.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.NotNil(t, groups[0].Logos)
	assert.Empty(t, groups[0].Logos)
}
