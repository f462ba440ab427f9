package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

type jobForm struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Location    string `validate:"required"`
}

// PostingService creates job listings on behalf of a company.
type PostingService struct {
	api      ports.JobAPI
	validate *validator.Validate
	log      zerolog.Logger
}

func NewPostingService(api ports.JobAPI, log zerolog.Logger) *PostingService {
	return &PostingService{api: api, validate: validator.New(), log: log}
}

func (s *PostingService) PostJob(ctx context.Context, input ports.CreateJobInput) (*domain.JobListing, error) {
	form := jobForm{Title: input.Title, Description: input.Description, Location: input.Location}
	if err := s.validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return nil, &domain.ValidationError{Field: ve[0].Field(), Reason: "is required"}
		}
		return nil, err
	}

	job, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("job_id", job.ID).Str("title", job.Title).Msg("job posted")
	return job, nil
}
