package models

import (
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
)

// Base holds the columns shared by all content tables. Timestamps are set by
// the services, so GORM's automatic tracking is disabled.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (b *Base) toRecord() content.Record {
	return content.Record{ID: b.ID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func (b *Base) fromRecord(r content.Record) {
	b.ID = r.ID
	b.CreatedAt = r.CreatedAt
	b.UpdatedAt = r.UpdatedAt
}
