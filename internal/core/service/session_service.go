package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// SessionService is the single source of truth for "who is logged in".
// The credential is the sole durable artifact; the identity is derived from
// it and never trusted without it. Single writer path, many readers.
type SessionService struct {
	store ports.CredentialStore
	auth  ports.AuthAPI
	log   zerolog.Logger

	mu         sync.Mutex
	credential string
	identity   *domain.User
	// resolveGen guards against stale identity resolutions: each credential
	// change bumps it, and a resolution result is discarded unless its
	// captured generation still matches.
	resolveGen uint64
}

func NewSessionService(store ports.CredentialStore, auth ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, auth: auth, log: log}
}

// Restore loads the persisted credential at startup and resolves its
// identity. A resolution failure clears the stored credential and leaves the
// session logged out; that is not an error at startup.
func (s *SessionService) Restore(ctx context.Context) error {
	token, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.credential = token
	s.resolveGen++
	s.mu.Unlock()

	if err := s.ResolveIdentity(ctx); err != nil {
		s.log.Debug().Err(err).Msg("stored credential no longer valid")
	}
	return nil
}

// SetCredential persists the token (empty clears the durable entry) and
// triggers identity resolution for the new value.
func (s *SessionService) SetCredential(ctx context.Context, token string) error {
	if token == "" {
		return s.clear(ctx)
	}
	if err := s.store.Store(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.credential = token
	s.identity = nil
	s.resolveGen++
	s.mu.Unlock()

	return s.ResolveIdentity(ctx)
}

// Establish installs a credential together with the identity a successful
// login or registration already returned, skipping the whoAmI round trip.
func (s *SessionService) Establish(ctx context.Context, token string, user domain.User) error {
	if err := s.store.Store(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.credential = token
	s.identity = &user
	s.resolveGen++
	s.mu.Unlock()
	return nil
}

// ResolveIdentity asks the gateway "who am I" for the current credential.
// No credential means no network call. Any failure is treated as an invalid
// session: both identity and credential are cleared, forcing re-login.
func (s *SessionService) ResolveIdentity(ctx context.Context) error {
	s.mu.Lock()
	token := s.credential
	gen := s.resolveGen
	if token == "" {
		s.identity = nil
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	user, err := s.auth.WhoAmI(ctx)

	s.mu.Lock()
	if gen != s.resolveGen {
		// Credential changed while the request was in flight.
		s.mu.Unlock()
		s.log.Debug().Msg("discarding stale identity resolution")
		return nil
	}
	if err != nil {
		s.credential = ""
		s.identity = nil
		s.mu.Unlock()
		s.clearStore()
		return err
	}
	s.identity = user
	s.mu.Unlock()
	s.log.Info().Str("role", user.Role).Str("email", user.Email).Msg("identity resolved")
	return nil
}

// Logout clears identity and credential synchronously without waiting for
// any network confirmation.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("clearing stored credential failed")
	}
}

// InvalidateCredential is the gateway's hook for rejected credentials. It
// must never block the in-flight request that triggered it.
func (s *SessionService) InvalidateCredential() {
	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.resolveGen++
	s.mu.Unlock()
	s.clearStore()
}

// Credential implements the gateway's TokenSource.
func (s *SessionService) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// Identity returns the resolved user, if any. Unresolved whenever the
// credential is absent.
func (s *SessionService) Identity() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.User{}, false
	}
	return *s.identity, true
}

func (s *SessionService) clear(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.resolveGen++
	s.mu.Unlock()
	return s.store.Clear(ctx)
}

func (s *SessionService) clearStore() {
	if err := s.store.Clear(context.Background()); err != nil {
		s.log.Warn().Err(err).Msg("clearing stored credential failed")
	}
}
