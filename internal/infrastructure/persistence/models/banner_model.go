package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// BannerModel is the GORM database model for the top banner
type BannerModel struct {
	Base
	Text            string  `gorm:"not null;type:varchar(280)"`
	LinkURL         *string `gorm:"type:varchar(2048)"`
	LinkLabel       *string `gorm:"type:varchar(60)"`
	BackgroundColor string  `gorm:"not null;type:varchar(9)"`
	IsActive        bool    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BannerModel) TableName() string {
	return "banners"
}

// ToDomain converts GORM model to domain entity
func (m *BannerModel) ToDomain() *content.Banner {
	return &content.Banner{
		Record:          m.toRecord(),
		Text:            m.Text,
		LinkURL:         m.LinkURL,
		LinkLabel:       m.LinkLabel,
		BackgroundColor: m.BackgroundColor,
		IsActive:        m.IsActive,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BannerModel) FromDomain(b *content.Banner) {
	m.fromRecord(b.Record)
	m.Text = b.Text
	m.LinkURL = b.LinkURL
	m.LinkLabel = b.LinkLabel
	m.BackgroundColor = b.BackgroundColor
	m.IsActive = b.IsActive
}
