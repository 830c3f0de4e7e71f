package app

import (
	"context"
	"errors"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// SiteSources are the services the public pages read from.
type SiteSources struct {
	Banner           content.BannerService
	Partners         content.PartnerService
	Services         content.CRUDService[*content.Service]
	TeamMembers      content.CRUDService[*content.TeamMember]
	Jobs             content.CRUDService[*content.JobOpening]
	Games            content.CRUDService[*content.Game]
	WebPortals       content.CRUDService[*content.WebPortal]
	DigitalMarketing content.CRUDService[*content.DigitalMarketingCase]
	Mastheads        content.CRUDService[*content.Masthead]
	SocialLinks      content.CRUDService[*content.SocialLink]
}

func (s SiteSources) complete() bool {
	return s.Banner != nil && s.Partners != nil && s.Services != nil && s.TeamMembers != nil &&
		s.Jobs != nil && s.Games != nil && s.WebPortals != nil && s.DigitalMarketing != nil &&
		s.Mastheads != nil && s.SocialLinks != nil
}

type siteService struct {
	src    SiteSources
	logger logger.Logger
}

// NewSiteService creates the reader behind the public pages
func NewSiteService(src SiteSources, logger logger.Logger) (content.SiteService, error) {
	if !src.complete() {
		return nil, errors.New("site service requires every content source")
	}
	return &siteService{src: src, logger: logger}, nil
}

// load runs list on all rows of a resource in default order.
func load[T content.Entity](ctx context.Context, g *errgroup.Group, svc content.CRUDService[T], dst *[]T) {
	g.Go(func() error {
		items, err := svc.List(ctx, content.NewListQuery())
		if err != nil {
			return err
		}
		*dst = items
		return nil
	})
}

func (s *siteService) HomePage(ctx context.Context) (*content.HomePage, error) {
	page := &content.HomePage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		banner, err := s.src.Banner.Get(gctx)
		page.Banner = banner
		return err
	})
	g.Go(func() error {
		groups, err := s.src.Partners.ListGroups(gctx)
		page.Partners = groups
		return err
	})
	load(gctx, g, s.src.Services, &page.Services)
	load(gctx, g, s.src.TeamMembers, &page.Team)
	load(gctx, g, s.src.Games, &page.Games)
	load(gctx, g, s.src.WebPortals, &page.WebPortals)
	load(gctx, g, s.src.DigitalMarketing, &page.Marketing)
	load(gctx, g, s.src.Mastheads, &page.Mastheads)
	load(gctx, g, s.src.SocialLinks, &page.SocialLinks)

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load home page", "error", err)
		return nil, err
	}
	return page, nil
}

func (s *siteService) Careers(ctx context.Context) ([]*content.JobOpening, error) {
	return s.src.Jobs.List(ctx, content.NewListQuery().WithFilter("active", "true"))
}

func (s *siteService) Masthead(ctx context.Context, id string) (*content.Masthead, error) {
	return s.src.Mastheads.GetByID(ctx, id)
}

func (s *siteService) SocialLinks(ctx context.Context) ([]*content.SocialLink, error) {
	return s.src.SocialLinks.List(ctx, content.NewListQuery())
}
