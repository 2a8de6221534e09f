package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeFreelance  JobType = "FREELANCE"
	JobTypeInternship JobType = "INTERNSHIP"
)

type LocationType string

const (
	LocationTypeRemote LocationType = "REMOTE"
	LocationTypeHybrid LocationType = "HYBRID"
	LocationTypeOnsite LocationType = "ONSITE"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

type Job struct {
	ID           uuid.UUID    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CompanyID    uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"companyId"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Requirements []string     `gorm:"serializer:json;type:text" json:"requirements"`
	SalaryRange  string       `gorm:"type:varchar(100)" json:"salaryRange"`
	Type         JobType      `gorm:"type:varchar(20);not null" json:"type"`
	Location     string       `gorm:"type:varchar(255)" json:"location"`
	LocationType LocationType `gorm:"type:varchar(20);not null" json:"locationType"`
	Status       JobStatus    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	// Relations
	Company      Company       `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
