package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// TeamMemberModel is the GORM database model for team members
type TeamMemberModel struct {
	Base
	Name         string  `gorm:"not null;type:varchar(120)"`
	Role         string  `gorm:"not null;type:varchar(120)"`
	ImagePath    string  `gorm:"not null;type:varchar(512)"`
	LinkedInURL  *string `gorm:"column:linkedin_url;type:varchar(2048)"`
	Bio          *string `gorm:"type:text"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// ToDomain converts GORM model to domain entity
func (m *TeamMemberModel) ToDomain() *content.TeamMember {
	return &content.TeamMember{
		Record:       m.toRecord(),
		Name:         m.Name,
		Role:         m.Role,
		ImagePath:    m.ImagePath,
		LinkedInURL:  m.LinkedInURL,
		Bio:          m.Bio,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TeamMemberModel) FromDomain(t *content.TeamMember) {
	m.fromRecord(t.Record)
	m.Name = t.Name
	m.Role = t.Role
	m.ImagePath = t.ImagePath
	m.LinkedInURL = t.LinkedInURL
	m.Bio = t.Bio
	m.DisplayOrder = t.DisplayOrder
}
