package ports

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

// PlatformStats is the admin aggregation service's count summary.
type PlatformStats struct {
	Users        int `json:"users"`
	Students     int `json:"students"`
	Companies    int `json:"companies"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
}

// AdminAPI is the remote admin aggregation and moderation service.
type AdminAPI interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	RecentUsers(ctx context.Context, limit int) ([]domain.User, error)
	RecentJobs(ctx context.Context, limit int) ([]domain.JobListing, error)
	SetUserStatus(ctx context.Context, userID, status string) (*domain.User, error)
	SetJobStatus(ctx context.Context, jobID, status string) (*domain.JobListing, error)
}
