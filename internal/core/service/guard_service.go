package service

import (
	"github.com/campushire/recruit-portal/internal/core/domain"
)

// GuardVerdict is the outcome of an access check.
type GuardVerdict int

const (
	// VerdictAllow renders the guarded content unchanged.
	VerdictAllow GuardVerdict = iota
	// VerdictLogin redirects to the login view: no credential at all.
	VerdictLogin
	// VerdictHome redirects to the neutral home view: authenticated but the
	// wrong role.
	VerdictHome
)

// Decision carries the verdict and the path to route to when denied.
type Decision struct {
	Verdict GuardVerdict
	Target  string
}

// GuardService is the boundary check before any role-scoped view. It reads
// the session fresh on every check; identity can change asynchronously after
// the initial load, so nothing is cached.
type GuardService struct {
	session *SessionService
}

func NewGuardService(session *SessionService) *GuardService {
	return &GuardService{session: session}
}

// Check evaluates the current session against the required role set. An
// empty set means any authenticated user.
func (g *GuardService) Check(requiredRoles ...string) Decision {
	if g.session.Credential() == "" {
		return Decision{Verdict: VerdictLogin, Target: "/login"}
	}
	if len(requiredRoles) == 0 {
		return Decision{Verdict: VerdictAllow}
	}

	identity, ok := g.session.Identity()
	if !ok {
		// Credential present but identity still unresolved: the role cannot
		// be proven, so the view is not reachable.
		return Decision{Verdict: VerdictHome, Target: "/"}
	}
	for _, role := range requiredRoles {
		if identity.Role == role {
			return Decision{Verdict: VerdictAllow}
		}
	}
	return Decision{Verdict: VerdictHome, Target: "/"}
}

// Route returns the dashboard path for the current identity, or the login
// path when the session is not established.
func (g *GuardService) Route() string {
	identity, ok := g.session.Identity()
	if !ok {
		return "/login"
	}
	return domain.DashboardPath(identity.Role)
}
