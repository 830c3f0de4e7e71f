package persistence

import (
	"fmt"
	"maps"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence/models"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories bundles every repository backed by one database handle.
type Repositories struct {
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
}

func sortable(extra map[string]string) map[string]string {
	columns := map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	maps.Copy(columns, extra)
	return columns
}

// List options per resource.
var (
	BannerListOptions = ListOptions{
		Resource:    "banner",
		SortColumns: sortable(nil),
		DefaultSort: "createdAt",
	}
	PartnerCategoryListOptions = ListOptions{
		Resource:      "partner category",
		SearchColumns: []string{"name"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "name": "name"}),
		DefaultSort:   "displayOrder",
	}
	PartnerLogoListOptions = ListOptions{
		Resource:      "partner logo",
		SearchColumns: []string{"name"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "name": "name"}),
		Filters:       map[string]Column{"categoryId": {Name: "category_id"}},
		DefaultSort:   "displayOrder",
	}
	TeamMemberListOptions = ListOptions{
		Resource:      "team member",
		SearchColumns: []string{"name", "role"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "name": "name"}),
		DefaultSort:   "displayOrder",
	}
	ServiceListOptions = ListOptions{
		Resource:      "service",
		SearchColumns: []string{"title", "description"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "title": "title"}),
		DefaultSort:   "displayOrder",
	}
	SocialLinkListOptions = ListOptions{
		Resource:      "social link",
		SearchColumns: []string{"platform", "url"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "platform": "platform"}),
		Filters:       map[string]Column{"platform": {Name: "platform"}},
		DefaultSort:   "displayOrder",
	}
	JobListOptions = ListOptions{
		Resource:      "job opening",
		SearchColumns: []string{"title", "department", "location"},
		SortColumns:   sortable(map[string]string{"title": "title", "department": "department"}),
		Filters: map[string]Column{
			"active":         {Name: "is_active", Bool: true},
			"department":     {Name: "department"},
			"employmentType": {Name: "employment_type"},
		},
		DefaultSort: "createdAt",
		DefaultDesc: true,
	}
	ApplicationListOptions = ListOptions{
		Resource:      "job application",
		SearchColumns: []string{"full_name", "email"},
		SortColumns:   sortable(map[string]string{"fullName": "full_name"}),
		Filters:       map[string]Column{"jobId": {Name: "job_id"}},
		DefaultSort:   "createdAt",
		DefaultDesc:   true,
	}
	SubscriberListOptions = ListOptions{
		Resource:      "subscriber",
		SearchColumns: []string{"email"},
		SortColumns:   sortable(map[string]string{"email": "email"}),
		Filters:       map[string]Column{"email": {Name: "email"}, "source": {Name: "source"}},
		DefaultSort:   "createdAt",
		DefaultDesc:   true,
	}
	GameListOptions = ListOptions{
		Resource:      "game",
		SearchColumns: []string{"title", "description"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "title": "title"}),
		DefaultSort:   "displayOrder",
	}
	WebPortalListOptions = ListOptions{
		Resource:      "web portal",
		SearchColumns: []string{"title", "description"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "title": "title"}),
		DefaultSort:   "displayOrder",
	}
	DigitalMarketingListOptions = ListOptions{
		Resource:      "digital marketing case",
		SearchColumns: []string{"title", "client"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "title": "title", "client": "client"}),
		DefaultSort:   "displayOrder",
	}
	MastheadListOptions = ListOptions{
		Resource:      "masthead",
		SearchColumns: []string{"title", "client"},
		SortColumns:   sortable(map[string]string{"displayOrder": "display_order", "title": "title"}),
		DefaultSort:   "displayOrder",
	}
)

// NewRepositories creates all repositories on db.
func NewRepositories(db *gorm.DB, log logger.Logger) (*Repositories, error) {
	var (
		repos = &Repositories{}
		err   error
	)

	if repos.Banners, err = NewGormContentRepository[*content.Banner, models.BannerModel](db, log, BannerListOptions); err != nil {
		return nil, err
	}
	if repos.PartnerCategories, err = NewGormContentRepository[*content.PartnerCategory, models.PartnerCategoryModel](db, log, PartnerCategoryListOptions); err != nil {
		return nil, err
	}
	if repos.PartnerLogos, err = NewGormContentRepository[*content.PartnerLogo, models.PartnerLogoModel](db, log, PartnerLogoListOptions); err != nil {
		return nil, err
	}
	if repos.TeamMembers, err = NewGormContentRepository[*content.TeamMember, models.TeamMemberModel](db, log, TeamMemberListOptions); err != nil {
		return nil, err
	}
	if repos.Services, err = NewGormContentRepository[*content.Service, models.ServiceModel](db, log, ServiceListOptions); err != nil {
		return nil, err
	}
	if repos.SocialLinks, err = NewGormContentRepository[*content.SocialLink, models.SocialLinkModel](db, log, SocialLinkListOptions); err != nil {
		return nil, err
	}
	if repos.Jobs, err = NewGormContentRepository[*content.JobOpening, models.JobOpeningModel](db, log, JobListOptions); err != nil {
		return nil, err
	}
	if repos.Applications, err = NewGormContentRepository[*content.JobApplication, models.JobApplicationModel](db, log, ApplicationListOptions); err != nil {
		return nil, err
	}
	if repos.Subscribers, err = NewGormContentRepository[*content.Subscriber, models.SubscriberModel](db, log, SubscriberListOptions); err != nil {
		return nil, err
	}
	if repos.Games, err = NewGormContentRepository[*content.Game, models.GameModel](db, log, GameListOptions); err != nil {
		return nil, err
	}
	if repos.WebPortals, err = NewGormContentRepository[*content.WebPortal, models.WebPortalModel](db, log, WebPortalListOptions); err != nil {
		return nil, err
	}
	if repos.DigitalMarketing, err = NewGormContentRepository[*content.DigitalMarketingCase, models.DigitalMarketingModel](db, log, DigitalMarketingListOptions); err != nil {
		return nil, err
	}
	if repos.Mastheads, err = NewGormContentRepository[*content.Masthead, models.MastheadModel](db, log, MastheadListOptions); err != nil {
		return nil, err
	}
	if repos.Assets, err = NewGormAssetRepository(db, log); err != nil {
		return nil, fmt.Errorf("asset repository: %w", err)
	}
	if repos.Users, err = NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	if repos.Revocations, err = NewGormRevocationRepository(db, log); err != nil {
		return nil, fmt.Errorf("revocation repository: %w", err)
	}

	return repos, nil
}
