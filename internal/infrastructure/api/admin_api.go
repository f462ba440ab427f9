package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// AdminAPI implements ports.AdminAPI against the admin aggregation service.
type AdminAPI struct {
	gw *Gateway
}

func NewAdminAPI(gw *Gateway) *AdminAPI {
	return &AdminAPI{gw: gw}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (a *AdminAPI) Stats(ctx context.Context) (*ports.PlatformStats, error) {
	var stats ports.PlatformStats
	if err := a.gw.GetJSON(ctx, "admin.stats", "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminAPI) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	var users []domain.User
	if err := a.gw.GetJSON(ctx, "admin.users", "/admin/users", limitParams(limit), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AdminAPI) RecentJobs(ctx context.Context, limit int) ([]domain.JobListing, error) {
	var jobs []domain.JobListing
	if err := a.gw.GetJSON(ctx, "admin.jobs", "/admin/jobs", limitParams(limit), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (a *AdminAPI) SetUserStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	var user domain.User
	err := a.gw.PatchJSON(ctx, "admin.user_status", "/admin/users/"+userID, statusUpdateRequest{Status: status}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AdminAPI) SetJobStatus(ctx context.Context, jobID, status string) (*domain.JobListing, error) {
	var job domain.JobListing
	err := a.gw.PatchJSON(ctx, "admin.job_status", "/admin/jobs/"+jobID, statusUpdateRequest{Status: status}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func limitParams(limit int) url.Values {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}
