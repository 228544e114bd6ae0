package sqlite

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ericfisherdev/credvault/internal/domain/model"
	"github.com/ericfisherdev/credvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.MetadataStore = (*MetadataRepo)(nil)

// MetadataRepo is the SQLite implementation of the MetadataStore port.
// The metadata table is pinned to a single row with id = 1; that
// constraint is what makes concurrent first-run salt creation safe.
type MetadataRepo struct {
	db *DB
}

// NewMetadataRepo creates a new MetadataRepo.
func NewMetadataRepo(db *DB) *MetadataRepo {
	return &MetadataRepo{db: db}
}

// GetOrCreateSalt returns the vault salt, creating it on first access.
// A candidate salt is inserted with DO NOTHING on conflict, then the
// winning row is read back: when two processes race the first run, both
// end up with the salt that won the insert, never two different salts.
func (r *MetadataRepo) GetOrCreateSalt(ctx context.Context) ([]byte, error) {
	candidate := make([]byte, model.SaltSize)
	if _, err := rand.Read(candidate); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	const insert = `
		INSERT INTO metadata (id, salt, created_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO NOTHING`
	if _, err := r.db.Writer.ExecContext(ctx, insert, candidate, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("create vault metadata: %w", err)
	}

	const query = `SELECT salt FROM metadata WHERE id = 1`
	var salt []byte
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&salt); err != nil {
		return nil, fmt.Errorf("read vault salt: %w", err)
	}
	if len(salt) != model.SaltSize {
		return nil, fmt.Errorf("stored salt has %d bytes, want %d", len(salt), model.SaltSize)
	}
	return salt, nil
}

// Get returns the vault metadata. The singleton row is guaranteed to
// exist after GetOrCreateSalt, so a missing row is reported as an error
// rather than an empty result.
func (r *MetadataRepo) Get(ctx context.Context) (*model.VaultMetadata, error) {
	const query = `SELECT salt, created_at FROM metadata WHERE id = 1`

	var meta model.VaultMetadata
	var createdAt string
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&meta.Salt, &createdAt); err != nil {
		return nil, fmt.Errorf("read vault metadata: %w", err)
	}

	var err error
	meta.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse metadata created_at: %w", err)
	}
	return &meta, nil
}
