package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/services"
)

// ApplicationDTO represents an application in API responses
type ApplicationDTO struct {
	ID        uuid.UUID                `json:"id"`
	UserID    uuid.UUID                `json:"userId"`
	JobID     uuid.UUID                `json:"jobId"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"appliedAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Job       *JobDTO                  `json:"job,omitempty"`
	User      *UserSummaryDTO          `json:"user,omitempty"`
}

// StatsDTO is the dashboard summary
type StatsDTO struct {
	TotalApplications  int64            `json:"totalApplications"`
	Interviewing       int64            `json:"interviewing"`
	Offers             int64            `json:"offers"`
	Rejected           int64            `json:"rejected"`
	SuccessRate        int              `json:"successRate"`
	RecentApplications []ApplicationDTO `json:"recentApplications"`
}

// ToApplicationDTO converts an application to DTO, embedding whichever
// relations were loaded.
func ToApplicationDTO(app models.Application) ApplicationDTO {
	result := ApplicationDTO{
		ID:        app.ID,
		UserID:    app.UserID,
		JobID:     app.JobID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
		UpdatedAt: app.UpdatedAt,
	}
	if app.Job.ID != uuid.Nil {
		job := ToJobDTO(app.Job)
		result.Job = &job
	}
	if app.User.ID != uuid.Nil {
		user := ToUserSummaryDTO(app.User)
		result.User = &user
	}
	return result
}

func ToApplicationDTOs(apps []models.Application) []ApplicationDTO {
	result := make([]ApplicationDTO, len(apps))
	for i, app := range apps {
		result[i] = ToApplicationDTO(app)
	}
	return result
}

func ToStatsDTO(stats services.Stats) StatsDTO {
	return StatsDTO{
		TotalApplications:  stats.TotalApplications,
		Interviewing:       stats.Interviewing,
		Offers:             stats.Offers,
		Rejected:           stats.Rejected,
		SuccessRate:        stats.SuccessRate,
		RecentApplications: ToApplicationDTOs(stats.RecentApplications),
	}
}
