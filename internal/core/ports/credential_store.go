package ports

import "context"

// CredentialStore persists the single bearer credential under a fixed key.
// Load returns an empty string, not an error, when no credential is stored.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Store(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
