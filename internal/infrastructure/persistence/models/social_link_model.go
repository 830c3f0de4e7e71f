package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// SocialLinkModel is the GORM database model for social links
type SocialLinkModel struct {
	Base
	Platform     string `gorm:"not null;type:varchar(20)"`
	URL          string `gorm:"column:url;not null;type:varchar(2048)"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (SocialLinkModel) TableName() string {
	return "social_links"
}

// ToDomain converts GORM model to domain entity
func (m *SocialLinkModel) ToDomain() *content.SocialLink {
	return &content.SocialLink{
		Record:       m.toRecord(),
		Platform:     m.Platform,
		URL:          m.URL,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SocialLinkModel) FromDomain(s *content.SocialLink) {
	m.fromRecord(s.Record)
	m.Platform = s.Platform
	m.URL = s.URL
	m.DisplayOrder = s.DisplayOrder
}
