package api

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// ApplicationAPI implements ports.ApplicationAPI against the remote
// application service.
type ApplicationAPI struct {
	gw *Gateway
}

func NewApplicationAPI(gw *Gateway) *ApplicationAPI {
	return &ApplicationAPI{gw: gw}
}

type applyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeURL string `json:"resumeUrl"`
}

type transitionRequest struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (a *ApplicationAPI) Apply(ctx context.Context, jobID string, input ports.ApplyInput) (*domain.Application, error) {
	req := applyRequest{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		ResumeURL: input.ResumeURL,
	}
	var app domain.Application
	err := a.gw.PostJSON(ctx, "applications.apply", "/applications/jobs/"+jobID+"/apply", req, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *ApplicationAPI) ListForCompany(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := a.gw.GetJSON(ctx, "applications.company", "/applications/company", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *ApplicationAPI) Transition(ctx context.Context, applicationID string, input ports.TransitionInput) (*domain.Application, error) {
	req := transitionRequest{Status: string(input.Status), Message: input.Message}
	var app domain.Application
	err := a.gw.PatchJSON(ctx, "applications.transition", "/applications/"+applicationID, req, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}
