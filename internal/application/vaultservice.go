package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/credvault/internal/domain/port/driven"
	"github.com/ericfisherdev/credvault/internal/vaultcrypto"
)

// ErrVaultLocked is returned when an entry operation is invoked before
// Open has derived a session key. This is a programming error in the
// caller, not a user-facing condition.
var ErrVaultLocked = errors.New("vault is locked: call Open first")

// ErrEmptyPassphrase is returned by Open when the passphrase is empty.
var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// Credential is a decrypted entry as returned by Retrieve.
type Credential struct {
	Service   string
	Username  string
	Password  string
	CreatedAt time.Time
}

// VaultService composes key derivation, the cipher and the entry store
// into the vault facade. One instance is one session: Open transitions
// it from locked to unlocked by deriving the session key, and Close
// wipes the key. There is no transition back to locked short of
// discarding the instance.
type VaultService struct {
	entries    driven.EntryStore
	metadata   driven.MetadataStore
	iterations int
	key        vaultcrypto.Secret // nil while locked
	logger     *slog.Logger
}

// NewVaultService creates a locked VaultService. Iteration counts below
// the current default are raised to it: the KDF cost is only ever tuned
// upward.
func NewVaultService(entries driven.EntryStore, metadata driven.MetadataStore, iterations int) *VaultService {
	if iterations < vaultcrypto.DefaultIterations {
		iterations = vaultcrypto.DefaultIterations
	}
	return &VaultService{
		entries:    entries,
		metadata:   metadata,
		iterations: iterations,
		logger:     slog.Default(),
	}
}

// Open unlocks the vault for this session: it obtains the salt (creating
// it on first run) and derives the session key from the passphrase. The
// passphrase itself is not verified here; a wrong passphrase surfaces
// later as vaultcrypto.ErrIntegrity when a secret fails to decrypt.
func (s *VaultService) Open(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	salt, err := s.metadata.GetOrCreateSalt(ctx)
	if err != nil {
		return fmt.Errorf("obtain vault salt: %w", err)
	}

	s.key = vaultcrypto.DeriveKey(passphrase, salt, s.iterations)
	s.logger.Debug("vault session opened")
	return nil
}

// Unlocked reports whether Open has derived a session key.
func (s *VaultService) Unlocked() bool { return s.key != nil }

// Close wipes the session key from memory. The service is unusable
// afterwards; safe to call more than once.
func (s *VaultService) Close() {
	s.key.Zero()
	s.key = nil
}

// AddOrUpdate encrypts the raw secret with the session key and upserts
// the entry. An existing entry for the same service is overwritten.
func (s *VaultService) AddOrUpdate(ctx context.Context, service, username, secret string) error {
	if !s.Unlocked() {
		return ErrVaultLocked
	}

	blob, err := vaultcrypto.Seal(s.key, []byte(secret))
	if err != nil {
		return fmt.Errorf("encrypt secret for %q: %w", service, err)
	}

	if err := s.entries.Upsert(ctx, service, username, blob); err != nil {
		return err
	}
	s.logger.Debug("entry stored", "service", service)
	return nil
}

// Retrieve looks up the entry for service and decrypts its secret.
// Returns driven.ErrEntryNotFound for an absent service. A decryption
// failure propagates as vaultcrypto.ErrIntegrity unchanged — a wrong
// passphrase derives a different key and fails the integrity check, and
// that must stay distinguishable from "no such entry".
func (s *VaultService) Retrieve(ctx context.Context, service string) (*Credential, error) {
	if !s.Unlocked() {
		return nil, ErrVaultLocked
	}

	entry, err := s.entries.Find(ctx, service)
	if err != nil {
		return nil, err
	}

	plaintext, err := vaultcrypto.Open(s.key, entry.Secret)
	if err != nil {
		return nil, err
	}

	return &Credential{
		Service:   entry.Service,
		Username:  entry.Username,
		Password:  string(plaintext),
		CreatedAt: entry.CreatedAt,
	}, nil
}

// ListServices returns all stored service names in lexicographic order.
// No cryptographic material is needed, but the session state machine
// still applies: listing a locked vault is a caller bug.
func (s *VaultService) ListServices(ctx context.Context) ([]string, error) {
	if !s.Unlocked() {
		return nil, ErrVaultLocked
	}
	return s.entries.ListServices(ctx)
}

// Delete removes the entry for service. Returns false when no entry
// existed.
func (s *VaultService) Delete(ctx context.Context, service string) (bool, error) {
	if !s.Unlocked() {
		return false, ErrVaultLocked
	}

	removed, err := s.entries.Delete(ctx, service)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Debug("entry deleted", "service", service)
	}
	return removed, nil
}
