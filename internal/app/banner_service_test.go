//go:build unit
// +build unit

package app

import (
	"context"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBannerService_Get_DefaultWhenUnset(t *testing.T) {
	repo := new(MockRepository[*content.Banner])
	svc, err := NewBannerService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, content.BannerID).Return(nil, content.ErrNotFound)

	banner, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, banner.IsActive)
	assert.Equal(t, content.BannerID, banner.ID)
	assert.Equal(t, content.DefaultBannerColor, banner.BackgroundColor)
}

func TestBannerService_Save_CreatesThenUpdates(t *testing.T) {
	repo := new(MockRepository[*content.Banner])
	svc, err := NewBannerService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, content.BannerID).Return(nil, content.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*content.Banner")).Return(nil).Once()

	saved, err := svc.Save(context.Background(), &content.Banner{Text: "  Summer sale  ", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Summer sale", saved.Text)
	assert.Equal(t, content.BannerID, saved.ID)

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stored := &content.Banner{Record: content.Record{ID: content.BannerID, CreatedAt: createdAt}, Text: "Summer sale"}
	repo.On("GetByID", mock.Anything, content.BannerID).Return(stored, nil).Once()
	repo.On("UpdateByID", mock.Anything, mock.AnythingOfType("*content.Banner")).Return(nil).Once()

	updated, err := svc.Save(context.Background(), &content.Banner{Text: "Winter sale"})
	require.NoError(t, err)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.False(t, updated.IsActive)
	repo.AssertExpectations(t)
}

func TestBannerService_Save_Invalid(t *testing.T) {
	repo := new(MockRepository[*content.Banner])
	svc, err := NewBannerService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, content.BannerID).Return(nil, content.ErrNotFound)

	_, err = svc.Save(context.Background(), &content.Banner{Text: ""})
	assert.ErrorIs(t, err, content.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
