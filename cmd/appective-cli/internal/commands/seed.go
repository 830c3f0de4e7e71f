package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"gopkg.in/yaml.v3"
)

// SeedDocument is the YAML layout accepted by the seed command. Entry keys
// use the same names as the REST API bodies.
type SeedDocument struct {
	Banner      map[string]any   `yaml:"banner"`
	Categories  []map[string]any `yaml:"categories"`
	Logos       []map[string]any `yaml:"logos"`
	Team        []map[string]any `yaml:"team"`
	Services    []map[string]any `yaml:"services"`
	SocialLinks []map[string]any `yaml:"socialLinks"`
	Jobs        []map[string]any `yaml:"jobs"`
}

// ParseSeedDocument decodes a seed file. Unknown top level keys are rejected.
func ParseSeedDocument(r io.Reader) (*SeedDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc SeedDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &doc, nil
}

// SeedReport counts what a seed run did per collection.
type SeedReport struct {
	Created map[string]int
	Skipped []string
}

// Seeder loads a SeedDocument through the content services so that every
// entry is normalized and validated like an API request.
type Seeder struct {
	banner     content.BannerService
	categories content.CRUDService[*content.PartnerCategory]
	logos      content.CRUDService[*content.PartnerLogo]
	team       content.CRUDService[*content.TeamMember]
	services   content.CRUDService[*content.Service]
	social     content.CRUDService[*content.SocialLink]
	jobs       content.CRUDService[*content.JobOpening]
	logger     logger.Logger
}

// NewSeeder creates a Seeder on top of services.
func NewSeeder(services *app.Services, logger logger.Logger) *Seeder {
	return &Seeder{
		banner:     services.Banner,
		categories: services.PartnerCategories,
		logos:      services.PartnerLogos,
		team:       services.TeamMembers,
		services:   services.Services,
		social:     services.SocialLinks,
		jobs:       services.Jobs,
		logger:     logger,
	}
}

// Seed stores the document. A collection that already holds entries is
// skipped as a whole, so running the same file twice does not duplicate
// content. The banner is always saved when present.
func (s *Seeder) Seed(ctx context.Context, doc *SeedDocument) (*SeedReport, error) {
	report := &SeedReport{Created: map[string]int{}}

	if len(doc.Banner) > 0 {
		banner, err := decodeEntry[content.Banner](doc.Banner)
		if err != nil {
			return report, fmt.Errorf("banner: %w", err)
		}
		if _, err := s.banner.Save(ctx, banner); err != nil {
			return report, fmt.Errorf("banner: %w", err)
		}
		report.Created["banner"] = 1
	}

	// Categories go before logos, which reference them.
	steps := []func() error{
		func() error { return seedCollection(ctx, s, report, "categories", doc.Categories, s.categories) },
		func() error { return seedCollection(ctx, s, report, "logos", doc.Logos, s.logos) },
		func() error { return seedCollection(ctx, s, report, "team", doc.Team, s.team) },
		func() error { return seedCollection(ctx, s, report, "services", doc.Services, s.services) },
		func() error { return seedCollection(ctx, s, report, "socialLinks", doc.SocialLinks, s.social) },
		func() error { return seedCollection(ctx, s, report, "jobs", doc.Jobs, s.jobs) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return report, err
		}
	}
	return report, nil
}

func seedCollection[E any, PE interface {
	*E
	content.Entity
}](ctx context.Context, s *Seeder, report *SeedReport, name string, entries []map[string]any, service content.CRUDService[PE]) error {
	if len(entries) == 0 {
		return nil
	}

	query := content.NewListQuery()
	query.Limit = 1
	existing, err := service.List(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if len(existing) > 0 {
		s.logger.Info("Skipping collection that already has entries", "collection", name)
		report.Skipped = append(report.Skipped, name)
		return nil
	}

	for i, raw := range entries {
		entity, err := decodeEntry[E](raw)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		if _, err := service.Create(ctx, PE(entity)); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		report.Created[name]++
	}
	s.logger.Info("Seeded collection", "collection", name, "count", report.Created[name])
	return nil
}

// decodeEntry maps a YAML mapping onto an entity through its JSON field names.
func decodeEntry[E any](raw map[string]any) (*E, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrValidation, err)
	}
	var entity E
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrValidation, err)
	}
	return &entity, nil
}
