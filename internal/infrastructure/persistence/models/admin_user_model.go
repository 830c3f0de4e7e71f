package models

import (
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
)

// AdminUserModel is the GORM database model for dashboard accounts
type AdminUserModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	Role         string    `gorm:"not null;type:varchar(20)"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToDomain converts GORM model to domain entity
func (m *AdminUserModel) ToDomain() *auth.AdminUser {
	return &auth.AdminUser{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         auth.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AdminUserModel) FromDomain(u *auth.AdminUser) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// RevokedTokenModel records a logged out session until its token expires
type RevokedTokenModel struct {
	TokenID   string    `gorm:"primaryKey;type:varchar(36)"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
