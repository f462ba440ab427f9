package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

func seededReview(apps *stubApplicationAPI) *ReviewService {
	s := NewReviewService(apps, zerolog.Nop())
	if err := s.Refresh(context.Background()); err != nil {
		panic(err)
	}
	return s
}

func reviewFixture() []domain.Application {
	return []domain.Application{
		{ID: "app-1", Status: domain.StatusPending, Job: domain.JobRef{ID: "job-1", Title: "Backend Developer"}},
		{ID: "app-2", Status: domain.StatusAccepted, Job: domain.JobRef{ID: "job-2", Title: "Designer"}},
	}
}

func TestTransitionConfirmsViaRefetch(t *testing.T) {
	var order []string
	apps := &stubApplicationAPI{listResult: reviewFixture(), order: &order}
	s := seededReview(apps)
	order = order[:0]

	if err := s.Transition(context.Background(), "app-1", domain.StatusAccepted, "welcome aboard"); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	if apps.transitionCalls != 1 {
		t.Fatalf("transition calls = %d, want 1", apps.transitionCalls)
	}
	if len(order) != 2 || order[0] != "transition" || order[1] != "list" {
		t.Fatalf("call order = %v, want transition then list", order)
	}
	if apps.lastTransition.Status != domain.StatusAccepted || apps.lastTransition.Message != "welcome aboard" {
		t.Fatalf("transition payload = %+v", apps.lastTransition)
	}

	got, ok := s.Get("app-1")
	if !ok || got.Status != domain.StatusAccepted {
		t.Fatalf("displayed state = %+v, want server-confirmed ACCEPTED", got)
	}
}

func TestTransitionFromNonPendingFailsLocally(t *testing.T) {
	apps := &stubApplicationAPI{listResult: reviewFixture()}
	s := seededReview(apps)
	before := apps.listCalls

	err := s.Transition(context.Background(), "app-2", domain.StatusRejected, "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if apps.transitionCalls != 0 {
		t.Fatal("invalid transition must not reach the server")
	}
	if apps.listCalls != before {
		t.Fatal("invalid transition must not trigger a refetch")
	}
}

func TestTransitionUnknownApplication(t *testing.T) {
	apps := &stubApplicationAPI{listResult: reviewFixture()}
	s := seededReview(apps)

	err := s.Transition(context.Background(), "app-99", domain.StatusAccepted, "")
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
	if apps.transitionCalls != 0 {
		t.Fatal("unknown id must not reach the server")
	}
}

func TestTransitionFailureKeepsCurrentState(t *testing.T) {
	apps := &stubApplicationAPI{
		listResult:    reviewFixture(),
		transitionErr: &domain.RequestError{Status: 422, Message: "invalid status transition"},
	}
	s := seededReview(apps)

	err := s.Transition(context.Background(), "app-1", domain.StatusInterview, "")
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RequestError", err)
	}

	got, _ := s.Get("app-1")
	if got.Status != domain.StatusPending {
		t.Fatalf("status = %s, want untouched PENDING", got.Status)
	}
	if s.InFlight("app-1") {
		t.Fatal("in-flight marker must clear after failure")
	}
}

func TestGetProjectsFromFetchedList(t *testing.T) {
	apps := &stubApplicationAPI{listResult: reviewFixture()}
	s := seededReview(apps)
	fetched := apps.listCalls

	if _, ok := s.Get("app-2"); !ok {
		t.Fatal("Get(app-2) should hit")
	}
	if _, ok := s.Get("app-99"); ok {
		t.Fatal("Get(app-99) should miss")
	}
	if apps.listCalls != fetched {
		t.Fatal("detail view must not issue its own fetch")
	}
}
