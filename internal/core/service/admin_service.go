package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

const recentLimit = 5

// Overview aggregates the admin dashboard data.
type Overview struct {
	Stats       ports.PlatformStats
	RecentUsers []domain.User
	RecentJobs  []domain.JobListing
}

// AdminService drives the admin aggregation and moderation workflows.
type AdminService struct {
	api ports.AdminAPI
	log zerolog.Logger
}

func NewAdminService(api ports.AdminAPI, log zerolog.Logger) *AdminService {
	return &AdminService{api: api, log: log}
}

// LoadOverview fetches stats and the recent users/jobs concurrently. The
// three reads are independent; the first failure wins.
func (s *AdminService) LoadOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.api.Stats(ctx)
		if err != nil {
			return err
		}
		overview.Stats = *stats
		return nil
	})
	g.Go(func() error {
		users, err := s.api.RecentUsers(ctx, recentLimit)
		if err != nil {
			return err
		}
		overview.RecentUsers = users
		return nil
	})
	g.Go(func() error {
		jobs, err := s.api.RecentJobs(ctx, recentLimit)
		if err != nil {
			return err
		}
		overview.RecentJobs = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// ModerateUser sets a user's account status.
func (s *AdminService) ModerateUser(ctx context.Context, userID, status string) (*domain.User, error) {
	user, err := s.api.SetUserStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("status", status).Msg("user status updated")
	return user, nil
}

// ModerateJob sets a listing's status.
func (s *AdminService) ModerateJob(ctx context.Context, jobID, status string) (*domain.JobListing, error) {
	job, err := s.api.SetJobStatus(ctx, jobID, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("job_id", jobID).Str("status", status).Msg("job status updated")
	return job, nil
}
