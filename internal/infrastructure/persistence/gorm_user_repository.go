package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence/models"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (auth.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *auth.AdminUser) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdminUserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "create", "admin user")
	}

	r.logger.Info("Created admin user", "id", user.ID, "role", string(user.Role))
	return nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin user %s: %w", email, content.ErrNotFound)
		}
		return nil, translateError(err, "fetch", "admin user")
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *auth.AdminUser) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AdminUserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return translateError(err, "update", "admin user")
	}

	r.logger.Info("Updated admin user", "id", user.ID)
	return nil
}

type gormRevocationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRevocationRepository creates a new GORM-based RevocationRepository implementation
func NewGormRevocationRepository(db *gorm.DB, logger logger.Logger) (auth.RevocationRepository, error) {
	return &gormRevocationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRevocationRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	model := &models.RevokedTokenModel{TokenID: tokenID, ExpiresAt: expiresAt}
	// Logging out twice is not an error
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(model).Error; err != nil {
		return translateError(err, "create", "token revocation")
	}
	return nil
}

func (r *gormRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RevokedTokenModel{}).Where("token_id = ?", tokenID).Count(&count).Error; err != nil {
		return false, translateError(err, "fetch", "token revocation")
	}
	return count > 0, nil
}

func (r *gormRevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.RevokedTokenModel{})
	if res.Error != nil {
		return 0, translateError(res.Error, "delete", "token revocations")
	}
	if res.RowsAffected > 0 {
		r.logger.Debug("Purged expired revocations", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
