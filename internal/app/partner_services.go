package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

// PartnerServices groups the services managing partner categories and logos.
type PartnerServices struct {
	Categories content.CRUDService[*content.PartnerCategory]
	Logos      content.CRUDService[*content.PartnerLogo]
	Groups     content.PartnerService
}

// NewPartnerServices wires category and logo management. Categories keep
// their editor chosen slug, cannot be deleted while logos reference them and
// logos must point at an existing category.
func NewPartnerServices(
	categories content.Repository[*content.PartnerCategory],
	logos content.Repository[*content.PartnerLogo],
	assetService assets.AssetService,
	logger logger.Logger,
) (*PartnerServices, error) {
	if categories == nil || logos == nil {
		return nil, errors.New("partner services require category and logo repositories")
	}

	categoryService, err := NewContentService(categories, nil, logger, ContentHooks[*content.PartnerCategory]{
		ClientID: true,
		BeforeDelete: func(ctx context.Context, category *content.PartnerCategory) error {
			n, err := logos.Count(ctx, content.NewListQuery().WithFilter("categoryId", category.ID))
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: partner category %s still has %d logos", content.ErrConflict, category.ID, n)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	logoService, err := NewContentService(logos, assetService, logger, ContentHooks[*content.PartnerLogo]{
		BeforeSave: func(ctx context.Context, logo *content.PartnerLogo) error {
			_, err := categories.GetByID(ctx, logo.CategoryID)
			if errors.Is(err, content.ErrNotFound) {
				return content.NewValidationError("unknown partner category %q", logo.CategoryID)
			}
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	return &PartnerServices{
		Categories: categoryService,
		Logos:      logoService,
		Groups:     &partnerService{categories: categories, logos: logos},
	}, nil
}

type partnerService struct {
	categories content.Repository[*content.PartnerCategory]
	logos      content.Repository[*content.PartnerLogo]
}

// ListGroups returns categories in display order, each with its logos.
func (s *partnerService) ListGroups(ctx context.Context) ([]*content.PartnerGroup, error) {
	categories, err := s.categories.List(ctx, content.NewListQuery())
	if err != nil {
		return nil, err
	}
	logos, err := s.logos.List(ctx, content.NewListQuery())
	if err != nil {
		return nil, err
	}

	groups := make([]*content.PartnerGroup, len(categories))
	byCategory := make(map[string]*content.PartnerGroup, len(categories))
	for i, category := range categories {
		groups[i] = &content.PartnerGroup{Category: category, Logos: []*content.PartnerLogo{}}
		byCategory[category.ID] = groups[i]
	}
	for _, logo := range logos {
		if group, ok := byCategory[logo.CategoryID]; ok {
			group.Logos = append(group.Logos, logo)
		}
	}
	return groups, nil
}
