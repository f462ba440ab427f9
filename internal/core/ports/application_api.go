package ports

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

// ApplyInput carries the applicant data filed against one job listing.
// ResumeURL must already point at an uploaded attachment.
type ApplyInput struct {
	Name      string
	Email     string
	Phone     string
	ResumeURL string
}

// TransitionInput carries a company-initiated status change. Message is an
// optional note delivered alongside the INTERVIEW status.
type TransitionInput struct {
	Status  domain.ApplicationStatus
	Message string
}

// ApplicationAPI is the remote application service.
type ApplicationAPI interface {
	Apply(ctx context.Context, jobID string, input ApplyInput) (*domain.Application, error)
	ListForCompany(ctx context.Context) ([]domain.Application, error)
	Transition(ctx context.Context, applicationID string, input TransitionInput) (*domain.Application, error)
}
