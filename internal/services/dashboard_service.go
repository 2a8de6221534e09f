package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/yukikurage/trackhire-api/internal/constants"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/models"
	"github.com/yukikurage/trackhire-api/internal/repository"
)

// DashboardService aggregates a user's applications into summary statistics.
type DashboardService struct {
	appRepo repository.ApplicationRepository
}

func NewDashboardService(appRepo repository.ApplicationRepository) *DashboardService {
	return &DashboardService{appRepo: appRepo}
}

// Stats summarizes one user's pipeline.
type Stats struct {
	TotalApplications  int64
	Interviewing       int64
	Offers             int64
	Rejected           int64
	SuccessRate        int
	RecentApplications []models.Application
}

// GetStats computes every figure from a single snapshot of the user's applications.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	snapshot, err := s.appRepo.Snapshot(ctx, userID, constants.RecentApplicationsLimit)
	if err != nil {
		return nil, apierrors.Internal("failed to load dashboard stats", err)
	}

	stats := &Stats{
		TotalApplications:  snapshot.Total(),
		Interviewing:       snapshot.Counts[models.ApplicationStatusInterview],
		Offers:             snapshot.Counts[models.ApplicationStatusOffer],
		Rejected:           snapshot.Counts[models.ApplicationStatusRejected],
		RecentApplications: snapshot.Recent,
	}
	stats.SuccessRate = SuccessRate(stats.Offers, stats.TotalApplications)

	return stats, nil
}

// SuccessRate is offers/total as a rounded percentage, 0 when total is 0.
func SuccessRate(offers, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(offers) / float64(total) * 100))
}
