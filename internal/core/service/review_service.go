package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// ReviewService lists a company's applications and drives status
// transitions. The listing and the detail view are two projections of the
// same fetched collection; detail is opened by selection, never by a
// separate fetch.
type ReviewService struct {
	api ports.ApplicationAPI
	log zerolog.Logger

	mu           sync.Mutex
	applications []domain.Application
	// inFlight is scoped per application, not a global lock: only the
	// transition being requested is inert while outstanding.
	inFlight map[string]bool
}

func NewReviewService(api ports.ApplicationAPI, log zerolog.Logger) *ReviewService {
	return &ReviewService{api: api, log: log, inFlight: make(map[string]bool)}
}

// Refresh re-fetches the full application list for the company.
func (s *ReviewService) Refresh(ctx context.Context) error {
	apps, err := s.api.ListForCompany(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.applications = apps
	s.mu.Unlock()
	return nil
}

// Applications returns the current list projection.
func (s *ReviewService) Applications() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// Get returns the detail projection for one application from the already
// fetched list.
func (s *ReviewService) Get(id string) (domain.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.applications {
		if app.ID == id {
			return app, true
		}
	}
	return domain.Application{}, false
}

// Transition requests a company-initiated status change, valid only from
// PENDING; the check fails fast locally in addition to server enforcement.
// After the request succeeds the full list is re-fetched so the displayed
// state is server-confirmed, never a local patch.
func (s *ReviewService) Transition(ctx context.Context, id string, status domain.ApplicationStatus, message string) error {
	s.mu.Lock()
	if s.inFlight[id] {
		s.mu.Unlock()
		return domain.ErrTransitionInFlight
	}
	var current *domain.Application
	for i := range s.applications {
		if s.applications[i].ID == id {
			current = &s.applications[i]
			break
		}
	}
	if current == nil {
		s.mu.Unlock()
		return domain.ErrApplicationNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		s.mu.Unlock()
		return domain.ErrInvalidTransition
	}
	s.inFlight[id] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, id)
		s.mu.Unlock()
	}()

	if _, err := s.api.Transition(ctx, id, ports.TransitionInput{Status: status, Message: message}); err != nil {
		s.log.Error().Err(err).Str("application_id", id).Str("status", string(status)).Msg("status transition failed")
		return err
	}

	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("status transition applied")
	return s.Refresh(ctx)
}

// InFlight reports whether a transition for this application is outstanding.
func (s *ReviewService) InFlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[id]
}
