package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOffer     ApplicationStatus = "OFFER"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists every status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusRejected,
}

// ParseApplicationStatus normalizes client input to the canonical status.
// Matching is case-insensitive and "ACCEPTED" is an alias for OFFER.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "APPLIED":
		return ApplicationStatusApplied, true
	case "INTERVIEW":
		return ApplicationStatusInterview, true
	case "OFFER", "ACCEPTED":
		return ApplicationStatusOffer, true
	case "REJECTED":
		return ApplicationStatusRejected, true
	default:
		return "", false
	}
}

// Application joins a User and a Job. The (user_id, job_id) pair is unique.
type Application struct {
	ID        uuid.UUID         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_user_job;index" json:"userId"`
	JobID     uuid.UUID         `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_user_job;index" json:"jobId"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AppliedAt time.Time         `gorm:"not null;index" json:"appliedAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Job  Job  `gorm:"foreignKey:JobID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
