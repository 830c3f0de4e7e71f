package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// PartnerCategoryModel is the GORM database model for partner categories
type PartnerCategoryModel struct {
	Base
	Name         string `gorm:"not null;type:varchar(120)"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
}

// TableName specifies the table name for GORM
func (PartnerCategoryModel) TableName() string {
	return "partner_categories"
}

// ToDomain converts GORM model to domain entity
func (m *PartnerCategoryModel) ToDomain() *content.PartnerCategory {
	return &content.PartnerCategory{
		Record:       m.toRecord(),
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PartnerCategoryModel) FromDomain(c *content.PartnerCategory) {
	m.fromRecord(c.Record)
	m.Name = c.Name
	m.DisplayOrder = c.DisplayOrder
}

// PartnerLogoModel is the GORM database model for partner logos
type PartnerLogoModel struct {
	Base
	CategoryID   string  `gorm:"not null;index;type:varchar(64)"`
	Name         string  `gorm:"not null;type:varchar(120)"`
	ImagePath    string  `gorm:"not null;type:varchar(512)"`
	WebsiteURL   *string `gorm:"type:varchar(2048)"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (PartnerLogoModel) TableName() string {
	return "partner_logos"
}

// ToDomain converts GORM model to domain entity
func (m *PartnerLogoModel) ToDomain() *content.PartnerLogo {
	return &content.PartnerLogo{
		Record:       m.toRecord(),
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		ImagePath:    m.ImagePath,
		WebsiteURL:   m.WebsiteURL,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PartnerLogoModel) FromDomain(l *content.PartnerLogo) {
	m.fromRecord(l.Record)
	m.CategoryID = l.CategoryID
	m.Name = l.Name
	m.ImagePath = l.ImagePath
	m.WebsiteURL = l.WebsiteURL
	m.DisplayOrder = l.DisplayOrder
}
