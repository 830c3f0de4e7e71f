package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence/models"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAssetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAssetRepository creates a new GORM-based AssetRepository implementation
func NewGormAssetRepository(db *gorm.DB, logger logger.Logger) (assets.AssetRepository, error) {
	return &gormAssetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAssetRepository) Create(ctx context.Context, asset *assets.Asset) error {
	if err := asset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AssetModel{}
	model.FromDomain(asset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "asset")
	}

	r.logger.Debug("Recorded asset", "path", asset.Path, "kind", string(asset.Kind))
	return nil
}

func (r *gormAssetRepository) CreateBatch(ctx context.Context, batch []*assets.Asset) error {
	if len(batch) == 0 {
		return nil
	}

	modelList := make([]*models.AssetModel, len(batch))
	for i, asset := range batch {
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("validation error for %s: %w", asset.Path, err)
		}
		modelList[i] = &models.AssetModel{}
		modelList[i].FromDomain(asset)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelList, 100).Error; err != nil {
		return translateError(err, "create", "assets")
	}

	r.logger.Debug("Recorded assets", "count", len(batch))
	return nil
}

func (r *gormAssetRepository) GetByPath(ctx context.Context, path string) (*assets.Asset, error) {
	var model models.AssetModel
	if err := r.db.WithContext(ctx).Where("path = ?", path).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", path, content.ErrNotFound)
		}
		return nil, translateError(err, "fetch", "asset")
	}
	return model.ToDomain(), nil
}

func (r *gormAssetRepository) ListByGroup(ctx context.Context, groupID string) ([]*assets.Asset, error) {
	var modelList []*models.AssetModel
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("path").Find(&modelList).Error; err != nil {
		return nil, translateError(err, "list", "assets")
	}

	domainList := make([]*assets.Asset, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAssetRepository) DeleteByPath(ctx context.Context, path string) error {
	res := r.db.WithContext(ctx).Where("path = ?", path).Delete(&models.AssetModel{})
	if res.Error != nil {
		return translateError(res.Error, "delete", "asset")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("asset %s: %w", path, content.ErrNotFound)
	}
	return nil
}

func (r *gormAssetRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&models.AssetModel{}).Error; err != nil {
		return translateError(err, "delete", "assets")
	}
	return nil
}
