package api

import (
	"context"
	"net/url"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// JobAPI implements ports.JobAPI against the remote job listing service.
type JobAPI struct {
	gw *Gateway
}

func NewJobAPI(gw *Gateway) *JobAPI {
	return &JobAPI{gw: gw}
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// List fetches listings matching the free-text query and location. Both
// parameters empty is valid and returns the unfiltered set.
func (a *JobAPI) List(ctx context.Context, query, location string) ([]domain.JobListing, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("location", location)

	var jobs []domain.JobListing
	if err := a.gw.GetJSON(ctx, "jobs.list", "/jobs", params, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (a *JobAPI) Create(ctx context.Context, input ports.CreateJobInput) (*domain.JobListing, error) {
	req := createJobRequest{Title: input.Title, Description: input.Description, Location: input.Location}
	var job domain.JobListing
	if err := a.gw.PostJSON(ctx, "jobs.create", "/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
