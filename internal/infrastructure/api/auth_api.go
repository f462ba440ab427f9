package api

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// AuthAPI implements ports.AuthAPI against the remote authentication service.
type AuthAPI struct {
	gw *Gateway
}

func NewAuthAPI(gw *Gateway) *AuthAPI {
	return &AuthAPI{gw: gw}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
}

type profileUpdateRequest struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

type profileUpdateResponse struct {
	User domain.User `json:"user"`
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.gw.PostJSON(ctx, "auth.login", "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{Token: resp.Token, User: resp.User}, nil
}

func (a *AuthAPI) Register(ctx context.Context, input ports.RegisterInput) error {
	companyName := input.CompanyName
	if input.Role == domain.RoleCompany && companyName == "" {
		companyName = input.Name
	}
	req := registerRequest{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Role:        input.Role,
		CompanyName: companyName,
	}
	return a.gw.PostJSON(ctx, "auth.register", "/auth/register", req, nil)
}

func (a *AuthAPI) WhoAmI(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.gw.GetJSON(ctx, "auth.me", "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, input ports.ProfileUpdateInput) (*domain.User, error) {
	req := profileUpdateRequest{
		Name:            input.Name,
		Email:           input.Email,
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	}
	var resp profileUpdateResponse
	if err := a.gw.PutJSON(ctx, "auth.update", "/auth/update", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
