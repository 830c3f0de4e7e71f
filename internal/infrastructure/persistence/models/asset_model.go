package models

import (
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
)

// AssetModel is the GORM database model for stored files
type AssetModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Path        string    `gorm:"not null;uniqueIndex;type:varchar(512)"`
	ContentType string    `gorm:"not null;type:varchar(127)"`
	Size        int64     `gorm:"not null"`
	Kind        string    `gorm:"not null;type:varchar(20)"`
	GroupID     *string   `gorm:"index;type:varchar(36)"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts GORM model to domain entity
func (m *AssetModel) ToDomain() *assets.Asset {
	a := &assets.Asset{
		ID:          m.ID,
		Path:        m.Path,
		ContentType: m.ContentType,
		Size:        m.Size,
		Kind:        assets.Kind(m.Kind),
		CreatedAt:   m.CreatedAt,
	}
	if m.GroupID != nil {
		a.GroupID = *m.GroupID
	}
	return a
}

// FromDomain converts domain entity to GORM model
func (m *AssetModel) FromDomain(a *assets.Asset) {
	m.ID = a.ID
	m.Path = a.Path
	m.ContentType = a.ContentType
	m.Size = a.Size
	m.Kind = string(a.Kind)
	m.GroupID = nil
	if a.GroupID != "" {
		groupID := a.GroupID
		m.GroupID = &groupID
	}
	m.CreatedAt = a.CreatedAt
}
