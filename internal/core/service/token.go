package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is a local, unverified peek inside the bearer token. The token
// stays opaque for authorization purposes; this only surfaces expiry and
// subject for display. Verification is the server's job.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken parses the current credential without verifying its
// signature. Returns false when there is no credential or it is not a JWT.
func (s *SessionService) InspectToken() (TokenInfo, bool) {
	raw := s.Credential()
	if raw == "" {
		return TokenInfo{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenInfo{}, false
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
