package driven

import "context"

// MetadataStore defines the driven port for the vault metadata singleton.
type MetadataStore interface {
	// GetOrCreateSalt returns the vault salt, generating and durably
	// persisting model.SaltSize random bytes on first access. Concurrent
	// first runs must resolve to a single salt: the adapter serializes
	// creation through the singleton-row constraint so two processes can
	// never observe different salts for the same vault file.
	GetOrCreateSalt(ctx context.Context) ([]byte, error)
}
