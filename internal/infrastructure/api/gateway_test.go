package api

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
	"github.com/campushire/recruit-portal/internal/core/service"
	"github.com/campushire/recruit-portal/internal/infrastructure/credstore"
	"github.com/campushire/recruit-portal/internal/testsupport/fakeapi"
)

type staticToken string

func (t staticToken) Credential() string { return string(t) }

func newFixture(t *testing.T) (*fakeapi.Server, *Gateway) {
	t.Helper()
	backend := fakeapi.New()
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)
	return backend, NewGateway(ts.URL, ts.Client(), zerolog.Nop())
}

func TestBearerTokenAttached(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{Name: "Ada", Email: "ada@uni.edu", Role: domain.RoleStudent}, "hunter22")
	gw.SetTokenSource(staticToken(backend.TokenFor("ada@uni.edu")))

	user, err := NewAuthAPI(gw).WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada@uni.edu", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role)
}

func TestRejectedCredentialFiresHookOnce(t *testing.T) {
	_, gw := newFixture(t)
	gw.SetTokenSource(staticToken("not-a-token"))
	hookCalls := 0
	gw.SetAuthRejectedHook(func() { hookCalls++ })

	_, err := NewAuthAPI(gw).WhoAmI(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRejected)
	assert.Equal(t, 1, hookCalls)
}

func TestFailureEnvelopeMessageSurfaced(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{Email: "taken@uni.edu", Role: domain.RoleStudent}, "hunter22")

	err := NewAuthAPI(gw).Register(context.Background(), ports.RegisterInput{
		Name:     "Dup",
		Email:    "taken@uni.edu",
		Password: "hunter22",
		Role:     domain.RoleStudent,
	})
	var re *domain.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 409, re.Status)
	assert.Equal(t, "email already registered", re.Message)
}

func TestTransportFailureUsesFallbackMessage(t *testing.T) {
	ts := httptest.NewServer(nil)
	ts.Close() // nothing is listening anymore
	gw := NewGateway(ts.URL, nil, zerolog.Nop())

	_, err := NewJobAPI(gw).List(context.Background(), "", "")
	var re *domain.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, domain.FallbackMessage, re.Message)
	assert.Zero(t, re.Status)
}

func TestJobSearchQueryParams(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedJob(domain.JobListing{Title: "Backend Developer", Location: "Remote"})
	backend.SeedJob(domain.JobListing{Title: "Frontend Developer", Location: "Berlin"})
	backend.SeedJob(domain.JobListing{Title: "Designer", Location: "Remote"})

	jobs, err := NewJobAPI(gw).List(context.Background(), "developer", "remote")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Developer", jobs[0].Title)
}

func TestMultipartResumeUpload(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{Email: "ada@uni.edu", Role: domain.RoleStudent}, "hunter22")
	gw.SetTokenSource(staticToken(backend.TokenFor("ada@uni.edu")))

	payload := bytes.Repeat([]byte{0xCD}, 2048)
	result, err := NewUploadAPI(gw).UploadResume(context.Background(), "cv.pdf", int64(len(payload)), bytes.NewReader(payload))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.URL, "cv.pdf")
	assert.Equal(t, 1, backend.UploadCalls())
}

func TestApplyAndTransitionRoundTrip(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{Email: "hr@acme.test", Role: domain.RoleCompany, CompanyName: "Acme"}, "hunter22")
	backend.SeedJob(domain.JobListing{ID: "job-1", Title: "Backend Developer"})
	gw.SetTokenSource(staticToken(backend.TokenFor("hr@acme.test")))

	apps := NewApplicationAPI(gw)
	created, err := apps.Apply(context.Background(), "job-1", ports.ApplyInput{
		Name:      "Ada",
		Email:     "ada@uni.edu",
		Phone:     "+44 1234",
		ResumeURL: "https://files.fakeapi.test/resumes/1-cv.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)

	updated, err := apps.Transition(context.Background(), created.ID, ports.TransitionInput{
		Status:  domain.StatusAccepted,
		Message: "welcome aboard",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, updated.Status)

	// A second transition is rejected server-side with the canonical envelope.
	_, err = apps.Transition(context.Background(), created.ID, ports.TransitionInput{Status: domain.StatusRejected})
	var re *domain.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 422, re.Status)
	assert.Equal(t, "invalid status transition", re.Message)
}

// TestRejectedCredentialForcesReLogin drives the full wiring: a request made
// with a revoked token clears the session through the gateway hook, and the
// next guard check routes to login.
func TestRejectedCredentialForcesReLogin(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{ID: "u1", Email: "ada@uni.edu", Role: domain.RoleStudent}, "hunter22")

	store := credstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	session := service.NewSessionService(store, NewAuthAPI(gw), zerolog.Nop())
	guard := service.NewGuardService(session)
	gw.SetTokenSource(session)
	gw.SetAuthRejectedHook(session.InvalidateCredential)

	require.NoError(t, session.SetCredential(context.Background(), backend.TokenFor("ada@uni.edu")))
	require.Equal(t, service.VerdictAllow, guard.Check(domain.RoleStudent).Verdict)

	// Simulate revocation: swap in a token the backend will refuse.
	require.NoError(t, session.Establish(context.Background(), "revoked-token", domain.User{ID: "u1", Role: domain.RoleStudent}))
	_, err := NewAuthAPI(gw).WhoAmI(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthRejected)

	decision := guard.Check(domain.RoleStudent)
	assert.Equal(t, service.VerdictLogin, decision.Verdict)
	assert.Equal(t, "/login", decision.Target)
	assert.Empty(t, session.Credential())

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, persisted, "rejected credential must be cleared from durable storage")
}

func TestApplyToMissingJob(t *testing.T) {
	backend, gw := newFixture(t)
	backend.SeedUser(domain.User{Email: "ada@uni.edu", Role: domain.RoleStudent}, "hunter22")
	gw.SetTokenSource(staticToken(backend.TokenFor("ada@uni.edu")))

	_, err := NewApplicationAPI(gw).Apply(context.Background(), "job-404", ports.ApplyInput{
		Name: "Ada", Email: "ada@uni.edu", Phone: "+44 1234", ResumeURL: "https://x.test/cv.pdf",
	})
	var re *domain.RequestError
	require.True(t, errors.As(err, &re), "err = %v", err)
	assert.Equal(t, 404, re.Status)
	assert.Equal(t, "job not found", re.Message)
}
