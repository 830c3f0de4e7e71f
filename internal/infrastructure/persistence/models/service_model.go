package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// ServiceModel is the GORM database model for agency services
type ServiceModel struct {
	Base
	Title        string  `gorm:"not null;type:varchar(120)"`
	Description  string  `gorm:"not null;type:text"`
	IconPath     *string `gorm:"type:varchar(512)"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceModel) ToDomain() *content.Service {
	return &content.Service{
		Record:       m.toRecord(),
		Title:        m.Title,
		Description:  m.Description,
		IconPath:     m.IconPath,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceModel) FromDomain(s *content.Service) {
	m.fromRecord(s.Record)
	m.Title = s.Title
	m.Description = s.Description
	m.IconPath = s.IconPath
	m.DisplayOrder = s.DisplayOrder
}
