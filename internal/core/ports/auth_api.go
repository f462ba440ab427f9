package ports

import (
	"context"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

// LoginResult is the authentication service's response to a successful login.
type LoginResult struct {
	Token string
	User  domain.User
}

// RegisterInput carries a new account's details. CompanyName is only
// meaningful for the COMPANY role and defaults to Name when empty.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CompanyName string
}

// ProfileUpdateInput is a partial profile update. Zero-valued fields are
// omitted from the request; a password change requires both Current and New.
type ProfileUpdateInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// AuthAPI is the remote authentication service.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) error
	// WhoAmI resolves the identity behind the current credential.
	WhoAmI(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input ProfileUpdateInput) (*domain.User, error)
}
