package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

type stubAccountAPI struct {
	loginResult   *ports.LoginResult
	loginErr      error
	loginCalls    int
	registerErr   error
	registerCalls int
	lastRegister  ports.RegisterInput
	updateResult  *domain.User
	updateErr     error
	lastUpdate    ports.ProfileUpdateInput
}

func (a *stubAccountAPI) Login(context.Context, string, string) (*ports.LoginResult, error) {
	a.loginCalls++
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return a.loginResult, nil
}

func (a *stubAccountAPI) Register(_ context.Context, input ports.RegisterInput) error {
	a.registerCalls++
	a.lastRegister = input
	return a.registerErr
}

func (a *stubAccountAPI) WhoAmI(context.Context) (*domain.User, error) {
	if a.loginResult == nil {
		return nil, domain.ErrAuthRejected
	}
	clone := a.loginResult.User
	return &clone, nil
}

func (a *stubAccountAPI) UpdateProfile(_ context.Context, input ports.ProfileUpdateInput) (*domain.User, error) {
	a.lastUpdate = input
	if a.updateErr != nil {
		return nil, a.updateErr
	}
	return a.updateResult, nil
}

func newAccount(api *stubAccountAPI) (*AccountService, *SessionService) {
	session := NewSessionService(&memoryCredStore{}, api, zerolog.Nop())
	return NewAccountService(api, session, zerolog.Nop()), session
}

func TestLoginRoutesByRole(t *testing.T) {
	cases := []struct {
		role string
		path string
	}{
		{domain.RoleCompany, "/company"},
		{domain.RoleAdmin, "/admin"},
		{domain.RoleStudent, "/student"},
		{"INTERN", "/student"}, // unknown roles fall back to the student dashboard
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			api := &stubAccountAPI{loginResult: &ports.LoginResult{
				Token: "tok-1",
				User:  domain.User{ID: "u1", Email: "who@ever.test", Role: tc.role},
			}}
			accounts, session := newAccount(api)

			user, path, err := accounts.Login(context.Background(), "who@ever.test", "hunter22")
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if path != tc.path {
				t.Fatalf("path = %q, want %q", path, tc.path)
			}
			if user.Role != tc.role {
				t.Fatalf("user role = %q", user.Role)
			}
			if session.Credential() != "tok-1" {
				t.Fatal("login must establish the session credential")
			}
			if id, ok := session.Identity(); !ok || id.ID != "u1" {
				t.Fatalf("identity = %+v, want the logged-in user", id)
			}
		})
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	api := &stubAccountAPI{}
	accounts, _ := newAccount(api)

	_, _, err := accounts.Login(context.Background(), "who@ever.test", "")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if api.loginCalls != 0 {
		t.Fatal("empty password must not reach the server")
	}
}

func TestLoginFailureEstablishesNothing(t *testing.T) {
	api := &stubAccountAPI{loginErr: &domain.RequestError{Status: 401, Message: "Invalid credentials"}}
	accounts, session := newAccount(api)

	_, _, err := accounts.Login(context.Background(), "who@ever.test", "wrong")
	var re *domain.RequestError
	if !errors.As(err, &re) || re.Message != "Invalid credentials" {
		t.Fatalf("err = %v", err)
	}
	if _, ok := session.Identity(); ok || session.Credential() != "" {
		t.Fatal("failed login must leave the session empty")
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name  string
		input ports.RegisterInput
		field string
	}{
		{"missing name", ports.RegisterInput{Email: "a@b.test", Password: "secret1", Role: "STUDENT"}, "Name"},
		{"bad email", ports.RegisterInput{Name: "Ada", Email: "not-an-email", Password: "secret1", Role: "STUDENT"}, "Email"},
		{"short password", ports.RegisterInput{Name: "Ada", Email: "a@b.test", Password: "pw", Role: "STUDENT"}, "Password"},
		{"unknown role", ports.RegisterInput{Name: "Ada", Email: "a@b.test", Password: "secret1", Role: "WIZARD"}, "Role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAccountAPI{}
			accounts, _ := newAccount(api)

			err := accounts.Register(context.Background(), tc.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field = %q, want %q", ve.Field, tc.field)
			}
			if api.registerCalls != 0 {
				t.Fatal("invalid input must not reach the server")
			}
		})
	}
}

func TestRegisterPassesInputThrough(t *testing.T) {
	api := &stubAccountAPI{}
	accounts, _ := newAccount(api)

	input := ports.RegisterInput{Name: "Acme", Email: "hr@acme.test", Password: "secret1", Role: "COMPANY", CompanyName: "Acme Corp"}
	if err := accounts.Register(context.Background(), input); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if api.lastRegister != input {
		t.Fatalf("register payload = %+v", api.lastRegister)
	}
}

func TestUpdateProfileRefreshesIdentity(t *testing.T) {
	api := &stubAccountAPI{
		loginResult:  &ports.LoginResult{Token: "tok-1", User: domain.User{ID: "u1", Name: "Ada", Role: domain.RoleStudent}},
		updateResult: &domain.User{ID: "u1", Name: "Ada L.", Role: domain.RoleStudent},
	}
	accounts, session := newAccount(api)
	if _, _, err := accounts.Login(context.Background(), "ada@uni.edu", "hunter22"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	user, err := accounts.UpdateProfile(context.Background(), ports.ProfileUpdateInput{Name: "Ada L."})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if user.Name != "Ada L." {
		t.Fatalf("user = %+v", user)
	}
	if id, ok := session.Identity(); !ok || id.Name != "Ada L." {
		t.Fatalf("identity = %+v, want refreshed record", id)
	}
	if session.Credential() != "tok-1" {
		t.Fatal("profile update must not touch the credential")
	}
}

func TestUpdateProfilePasswordPair(t *testing.T) {
	api := &stubAccountAPI{}
	accounts, _ := newAccount(api)

	_, err := accounts.UpdateProfile(context.Background(), ports.ProfileUpdateInput{NewPassword: "secret2"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	_, err = accounts.UpdateProfile(context.Background(), ports.ProfileUpdateInput{})
	if !errors.As(err, &ve) {
		t.Fatalf("empty update err = %v, want ValidationError", err)
	}
}
