package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

// Stores are the repositories, storage connectors and collaborators the
// services run on.
type Stores struct {
	Banners           content.Repository[*content.Banner]
	PartnerCategories content.Repository[*content.PartnerCategory]
	PartnerLogos      content.Repository[*content.PartnerLogo]
	TeamMembers       content.Repository[*content.TeamMember]
	Services          content.Repository[*content.Service]
	SocialLinks       content.Repository[*content.SocialLink]
	Jobs              content.Repository[*content.JobOpening]
	Applications      content.Repository[*content.JobApplication]
	Subscribers       content.Repository[*content.Subscriber]
	Games             content.Repository[*content.Game]
	WebPortals        content.Repository[*content.WebPortal]
	DigitalMarketing  content.Repository[*content.DigitalMarketingCase]
	Mastheads         content.Repository[*content.Masthead]
	Assets            assets.AssetRepository
	Users             auth.UserRepository
	Revocations       auth.RevocationRepository

	PublicFiles  assets.Connector
	PrivateFiles assets.Connector
	Issuer       auth.TokenIssuer
	Publisher    notify.Publisher
}

// Services bundles every domain service used by the REST API and the site.
type Services struct {
	Banner            content.BannerService
	Partners          content.PartnerService
	PartnerCategories content.CRUDService[*content.PartnerCategory]
	PartnerLogos      content.CRUDService[*content.PartnerLogo]
	TeamMembers       content.CRUDService[*content.TeamMember]
	Services          content.CRUDService[*content.Service]
	SocialLinks       content.CRUDService[*content.SocialLink]
	Jobs              content.CRUDService[*content.JobOpening]
	Games             content.CRUDService[*content.Game]
	WebPortals        content.CRUDService[*content.WebPortal]
	DigitalMarketing  content.CRUDService[*content.DigitalMarketingCase]
	Mastheads         content.CRUDService[*content.Masthead]
	Applications      content.ApplicationService
	Newsletter        content.NewsletterService
	Assets            assets.AssetService
	Auth              auth.AuthService
	Site              content.SiteService
}

// NewServices wires all services on top of stores
func NewServices(stores *Stores, storage *config.StorageSettings, logger logger.Logger) (*Services, error) {
	var (
		svc = &Services{}
		err error
	)

	if svc.Assets, err = NewAssetService(stores.PublicFiles, stores.PrivateFiles, stores.Assets, storage, logger); err != nil {
		return nil, fmt.Errorf("failed to create asset service: %w", err)
	}
	if svc.Auth, err = NewAuthService(stores.Users, stores.Revocations, stores.Issuer, logger); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if svc.Banner, err = NewBannerService(stores.Banners, logger); err != nil {
		return nil, fmt.Errorf("failed to create banner service: %w", err)
	}

	partners, err := NewPartnerServices(stores.PartnerCategories, stores.PartnerLogos, svc.Assets, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create partner services: %w", err)
	}
	svc.Partners = partners.Groups
	svc.PartnerCategories = partners.Categories
	svc.PartnerLogos = partners.Logos

	if svc.TeamMembers, err = NewContentService(stores.TeamMembers, svc.Assets, logger, ContentHooks[*content.TeamMember]{}); err != nil {
		return nil, fmt.Errorf("failed to create team service: %w", err)
	}
	if svc.Services, err = NewContentService(stores.Services, svc.Assets, logger, ContentHooks[*content.Service]{}); err != nil {
		return nil, fmt.Errorf("failed to create services service: %w", err)
	}
	if svc.SocialLinks, err = NewContentService(stores.SocialLinks, nil, logger, ContentHooks[*content.SocialLink]{}); err != nil {
		return nil, fmt.Errorf("failed to create social link service: %w", err)
	}
	if svc.Jobs, err = NewContentService(stores.Jobs, nil, logger, ContentHooks[*content.JobOpening]{}); err != nil {
		return nil, fmt.Errorf("failed to create job service: %w", err)
	}
	if svc.Games, err = NewContentService(stores.Games, svc.Assets, logger, ContentHooks[*content.Game]{}); err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}
	if svc.WebPortals, err = NewContentService(stores.WebPortals, svc.Assets, logger, ContentHooks[*content.WebPortal]{}); err != nil {
		return nil, fmt.Errorf("failed to create web portal service: %w", err)
	}
	if svc.DigitalMarketing, err = NewContentService(stores.DigitalMarketing, svc.Assets, logger, ContentHooks[*content.DigitalMarketingCase]{}); err != nil {
		return nil, fmt.Errorf("failed to create digital marketing service: %w", err)
	}
	if svc.Mastheads, err = NewContentService(stores.Mastheads, svc.Assets, logger, ContentHooks[*content.Masthead]{
		BeforeSave: mastheadEntryCheck(svc.Assets),
	}); err != nil {
		return nil, fmt.Errorf("failed to create masthead service: %w", err)
	}

	if svc.Applications, err = NewApplicationService(stores.Applications, stores.Jobs, svc.Assets, stores.Publisher, logger); err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}
	if svc.Newsletter, err = NewNewsletterService(stores.Subscribers, stores.Publisher, logger); err != nil {
		return nil, fmt.Errorf("failed to create newsletter service: %w", err)
	}

	if svc.Site, err = NewSiteService(SiteSources{
		Banner:           svc.Banner,
		Partners:         svc.Partners,
		Services:         svc.Services,
		TeamMembers:      svc.TeamMembers,
		Jobs:             svc.Jobs,
		Games:            svc.Games,
		WebPortals:       svc.WebPortals,
		DigitalMarketing: svc.DigitalMarketing,
		Mastheads:        svc.Mastheads,
		SocialLinks:      svc.SocialLinks,
	}, logger); err != nil {
		return nil, fmt.Errorf("failed to create site service: %w", err)
	}

	return svc, nil
}

// mastheadEntryCheck rejects mastheads whose entry file was never uploaded.
func mastheadEntryCheck(assetService assets.AssetService) func(context.Context, *content.Masthead) error {
	return func(ctx context.Context, m *content.Masthead) error {
		obj, err := assetService.Open(ctx, m.EntryPath)
		if errors.Is(err, content.ErrNotFound) || errors.Is(err, assets.ErrInvalidPath) {
			return content.NewValidationError("entry path %s does not point at an uploaded masthead", m.EntryPath)
		}
		if err != nil {
			return err
		}
		return obj.Close()
	}
}
