package content

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/validators"
)

// Employment types accepted for job openings.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// JobOpening is a position advertised on the careers page.
type JobOpening struct {
	Record
	Title          string `json:"title" validate:"required,min=1,max=160"`
	Department     string `json:"department" validate:"required,min=1,max=120"`
	Location       string `json:"location" validate:"required,min=1,max=120"`
	EmploymentType string `json:"employmentType" validate:"required,oneof=full-time part-time contract internship"`
	Description    string `json:"description" validate:"required,min=1,max=20000"`
	IsActive       bool   `json:"isActive"`
}

// Normalize trims fields and sanitizes the description markup.
func (j *JobOpening) Normalize() {
	j.Title = strings.TrimSpace(j.Title)
	j.Department = strings.TrimSpace(j.Department)
	j.Location = strings.TrimSpace(j.Location)
	j.EmploymentType = strings.ToLower(strings.TrimSpace(j.EmploymentType))
	j.Description = sanitize.RichText(j.Description)
}

// Validate for validating JobOpening struct
func (j *JobOpening) Validate() error {
	return validationError(validators.Struct(j))
}

// JobApplication is a candidate's submission for a job opening.
// ResumePath is a key in private storage and never exposed publicly.
type JobApplication struct {
	Record
	JobID       string  `json:"jobId" validate:"required,max=64"`
	FullName    string  `json:"fullName" validate:"required,min=1,max=160"`
	Email       string  `json:"email" validate:"required,email,max=254"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	CoverLetter *string `json:"coverLetter,omitempty" validate:"omitempty,max=10000"`
	ResumePath  string  `json:"-" validate:"required,max=255"`
	ResumeName  string  `json:"resumeName" validate:"required,max=255"`
}

// Normalize trims fields and strips markup from free text.
func (a *JobApplication) Normalize() {
	a.JobID = strings.TrimSpace(a.JobID)
	a.FullName = sanitize.PlainText(a.FullName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = trimOptional(a.Phone)
	if a.CoverLetter != nil {
		letter := sanitize.PlainText(*a.CoverLetter)
		a.CoverLetter = trimOptional(&letter)
	}
}

// Validate for validating JobApplication struct
func (a *JobApplication) Validate() error {
	return validationError(validators.Struct(a))
}
