package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// SubscriberModel is the GORM database model for newsletter subscribers
type SubscriberModel struct {
	Base
	Email  string  `gorm:"not null;uniqueIndex;type:varchar(254)"`
	Source *string `gorm:"type:varchar(60)"`
}

// TableName specifies the table name for GORM
func (SubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

// ToDomain converts GORM model to domain entity
func (m *SubscriberModel) ToDomain() *content.Subscriber {
	return &content.Subscriber{
		Record: m.toRecord(),
		Email:  m.Email,
		Source: m.Source,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SubscriberModel) FromDomain(s *content.Subscriber) {
	m.fromRecord(s.Record)
	m.Email = s.Email
	m.Source = s.Source
}
