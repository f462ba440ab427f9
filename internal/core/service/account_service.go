package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required,oneof=STUDENT COMPANY ADMIN"`
}

// AccountService drives authentication workflows: login with role routing,
// registration, and profile updates.
type AccountService struct {
	auth     ports.AuthAPI
	session  *SessionService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAccountService(auth ports.AuthAPI, session *SessionService, log zerolog.Logger) *AccountService {
	return &AccountService{auth: auth, session: session, validate: validator.New(), log: log}
}

// Login authenticates and establishes the session. It returns the resolved
// user and the dashboard path the session is routed to.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", &domain.ValidationError{Reason: "email and password are required"}
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if err := s.session.Establish(ctx, result.Token, result.User); err != nil {
		return nil, "", err
	}

	s.log.Info().Str("role", result.User.Role).Msg("logged in")
	return &result.User, domain.DashboardPath(result.User.Role), nil
}

// Register creates an account. The caller is routed to login afterwards; no
// session is established.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) error {
	form := registerForm{Name: input.Name, Email: input.Email, Password: input.Password, Role: input.Role}
	if err := s.validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return &domain.ValidationError{Field: ve[0].Field(), Reason: registerReason(ve[0])}
		}
		return err
	}
	return s.auth.Register(ctx, input)
}

// UpdateProfile applies a partial profile update and refreshes the session
// identity with the returned record.
func (s *AccountService) UpdateProfile(ctx context.Context, input ports.ProfileUpdateInput) (*domain.User, error) {
	if (input.CurrentPassword == "") != (input.NewPassword == "") {
		return nil, &domain.ValidationError{Reason: "current and new password must be supplied together"}
	}
	if input.Name == "" && input.Email == "" && input.NewPassword == "" {
		return nil, &domain.ValidationError{Reason: "nothing to update"}
	}

	user, err := s.auth.UpdateProfile(ctx, input)
	if err != nil {
		return nil, err
	}
	// Keep the in-memory identity in step; the credential is unchanged.
	if token := s.session.Credential(); token != "" && user != nil {
		_ = s.session.Establish(ctx, token, *user)
	}
	return user, nil
}

func registerReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed validation (" + fe.Tag() + ")"
	}
}
