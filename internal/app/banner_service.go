package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

type bannerService struct {
	repo   content.Repository[*content.Banner]
	logger logger.Logger
	now    func() time.Time
}

// NewBannerService creates the service behind the top banner singleton
func NewBannerService(repo content.Repository[*content.Banner], logger logger.Logger) (content.BannerService, error) {
	if repo == nil {
		return nil, errors.New("banner service requires a repository")
	}
	return &bannerService{repo: repo, logger: logger, now: timestamp}, nil
}

func (s *bannerService) Get(ctx context.Context) (*content.Banner, error) {
	banner, err := s.repo.GetByID(ctx, content.BannerID)
	if errors.Is(err, content.ErrNotFound) {
		return content.NewDefaultBanner(), nil
	}
	if err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) Save(ctx context.Context, banner *content.Banner) (*content.Banner, error) {
	banner.Normalize()

	existing, err := s.repo.GetByID(ctx, content.BannerID)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	if existing == nil {
		banner.Stamp(now, now)
	} else {
		banner.Stamp(existing.CreatedAt, now)
	}
	if err := banner.Validate(); err != nil {
		return nil, err
	}

	if existing == nil {
		err = s.repo.Create(ctx, banner)
	} else {
		err = s.repo.UpdateByID(ctx, banner)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save banner: %w", err)
	}

	s.logger.Info("Saved banner", "active", banner.IsActive)
	return banner, nil
}
