package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// JobOpeningModel is the GORM database model for job openings
type JobOpeningModel struct {
	Base
	Title          string `gorm:"not null;type:varchar(160)"`
	Department     string `gorm:"not null;type:varchar(120)"`
	Location       string `gorm:"not null;type:varchar(120)"`
	EmploymentType string `gorm:"not null;type:varchar(20)"`
	Description    string `gorm:"not null;type:text"`
	IsActive       bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (JobOpeningModel) TableName() string {
	return "job_openings"
}

// ToDomain converts GORM model to domain entity
func (m *JobOpeningModel) ToDomain() *content.JobOpening {
	return &content.JobOpening{
		Record:         m.toRecord(),
		Title:          m.Title,
		Department:     m.Department,
		Location:       m.Location,
		EmploymentType: m.EmploymentType,
		Description:    m.Description,
		IsActive:       m.IsActive,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobOpeningModel) FromDomain(j *content.JobOpening) {
	m.fromRecord(j.Record)
	m.Title = j.Title
	m.Department = j.Department
	m.Location = j.Location
	m.EmploymentType = j.EmploymentType
	m.Description = j.Description
	m.IsActive = j.IsActive
}

// JobApplicationModel is the GORM database model for job applications
type JobApplicationModel struct {
	Base
	JobID       string  `gorm:"not null;index;type:varchar(64)"`
	FullName    string  `gorm:"not null;type:varchar(160)"`
	Email       string  `gorm:"not null;type:varchar(254)"`
	Phone       *string `gorm:"type:varchar(40)"`
	CoverLetter *string `gorm:"type:text"`
	ResumePath  string  `gorm:"not null;type:varchar(512)"`
	ResumeName  string  `gorm:"not null;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (JobApplicationModel) TableName() string {
	return "job_applications"
}

// ToDomain converts GORM model to domain entity
func (m *JobApplicationModel) ToDomain() *content.JobApplication {
	return &content.JobApplication{
		Record:      m.toRecord(),
		JobID:       m.JobID,
		FullName:    m.FullName,
		Email:       m.Email,
		Phone:       m.Phone,
		CoverLetter: m.CoverLetter,
		ResumePath:  m.ResumePath,
		ResumeName:  m.ResumeName,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobApplicationModel) FromDomain(a *content.JobApplication) {
	m.fromRecord(a.Record)
	m.JobID = a.JobID
	m.FullName = a.FullName
	m.Email = a.Email
	m.Phone = a.Phone
	m.CoverLetter = a.CoverLetter
	m.ResumePath = a.ResumePath
	m.ResumeName = a.ResumeName
}
