package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/credvault/internal/domain/model"
)

// ErrEntryNotFound is returned by EntryStore lookups when no entry exists
// for the requested service. It is a normal control-flow outcome, distinct
// from storage failures.
var ErrEntryNotFound = errors.New("entry not found")

// EntryStore defines the driven port for credential entry persistence.
// Secrets cross this boundary as ciphertext only; the store never sees
// plaintext. Every operation is durably committed before it returns.
type EntryStore interface {
	// Upsert inserts the entry or, when service already exists, replaces
	// username and secret in place. Service matching is case-sensitive
	// exact match; at most one entry per service ever exists.
	Upsert(ctx context.Context, service, username string, secret []byte) error

	// Find returns the entry for the given service, or ErrEntryNotFound.
	Find(ctx context.Context, service string) (*model.Entry, error)

	// ListServices returns all stored service names in lexicographic order.
	ListServices(ctx context.Context) ([]string, error)

	// Delete removes the entry for the given service. Returns false when
	// no entry existed; absence is not an error.
	Delete(ctx context.Context, service string) (bool, error)
}
