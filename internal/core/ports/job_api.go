package ports

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

// CreateJobInput carries a new listing posted by a company.
type CreateJobInput struct {
	Title       string
	Description string
	Location    string
}

// JobAPI is the remote job listing service. List with an empty query and
// location returns the unfiltered listing set.
type JobAPI interface {
	List(ctx context.Context, query, location string) ([]domain.JobListing, error)
	Create(ctx context.Context, input CreateJobInput) (*domain.JobListing, error)
}
