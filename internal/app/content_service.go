package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

// timestamp is the clock used for entity timestamps. Microsecond precision
// survives every supported database.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// ContentHooks customize a content service for one resource.
type ContentHooks[T content.Entity] struct {
	// ClientID keeps the ID supplied on create instead of generating a uuid.
	ClientID bool
	// BeforeSave runs after validation on create and update.
	BeforeSave func(ctx context.Context, entity T) error
	// BeforeDelete runs before the entity is removed.
	BeforeDelete func(ctx context.Context, entity T) error
}

// contentService implements content.CRUDService for any entity type
type contentService[T content.Entity] struct {
	repo   content.Repository[T]
	assets assets.AssetService
	hooks  ContentHooks[T]
	logger logger.Logger
	now    func() time.Time
}

// NewContentService creates a CRUD service over repo. When assetService is
// not nil, files owned by deleted or replaced entities are removed from storage.
func NewContentService[T content.Entity](
	repo content.Repository[T],
	assetService assets.AssetService,
	logger logger.Logger,
	hooks ContentHooks[T],
) (content.CRUDService[T], error) {
	if repo == nil {
		return nil, errors.New("content service requires a repository")
	}
	return &contentService[T]{
		repo:   repo,
		assets: assetService,
		hooks:  hooks,
		logger: logger,
		now:    timestamp,
	}, nil
}

func (s *contentService[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	if !s.hooks.ClientID {
		entity.SetID(uuid.NewString())
	}
	entity.Normalize()
	now := s.now()
	entity.Stamp(now, now)

	if err := entity.Validate(); err != nil {
		return zero, err
	}
	if s.hooks.BeforeSave != nil {
		if err := s.hooks.BeforeSave(ctx, entity); err != nil {
			return zero, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

func (s *contentService[T]) List(ctx context.Context, query *content.ListQuery) ([]T, error) {
	return s.repo.List(ctx, query)
}

func (s *contentService[T]) GetByID(ctx context.Context, id string) (T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contentService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	entity.SetID(existing.GetID())
	entity.Normalize()
	entity.Stamp(existing.GetCreatedAt(), s.now())

	if err := entity.Validate(); err != nil {
		return zero, err
	}
	if s.hooks.BeforeSave != nil {
		if err := s.hooks.BeforeSave(ctx, entity); err != nil {
			return zero, err
		}
	}
	if err := s.repo.UpdateByID(ctx, entity); err != nil {
		return zero, err
	}

	s.removeAssets(ctx, replacedAssets(existing, entity))
	return entity, nil
}

func (s *contentService[T]) DeleteByID(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.hooks.BeforeDelete != nil {
		if err := s.hooks.BeforeDelete(ctx, existing); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.removeAssets(ctx, ownedAssets(existing))
	return nil
}

// removeAssets deletes files best-effort; the entity change already happened.
func (s *contentService[T]) removeAssets(ctx context.Context, paths []string) {
	if s.assets == nil {
		return
	}
	for _, p := range paths {
		err := s.assets.Delete(ctx, p)
		switch {
		case err == nil:
			s.logger.Info("Removed asset", "path", p)
		case errors.Is(err, content.ErrNotFound), errors.Is(err, assets.ErrInvalidPath):
			s.logger.Debug("Asset already gone", "path", p)
		default:
			s.logger.Warn("Failed to remove asset", "path", p, "error", err)
		}
	}
}

func ownedAssets(entity any) []string {
	if owner, ok := entity.(content.AssetOwner); ok {
		return owner.AssetPaths()
	}
	return nil
}

// replacedAssets lists files referenced before an update but not after it.
func replacedAssets(before, after any) []string {
	current := ownedAssets(after)
	var dropped []string
	for _, p := range ownedAssets(before) {
		if !slices.Contains(current, p) {
			dropped = append(dropped, p)
		}
	}
	return dropped
}

// notFound reports a missing entity with a resource specific message.
func notFound(resource, id string) error {
	return fmt.Errorf("%s with ID %s: %w", resource, id, content.ErrNotFound)
}
