package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/credvault/internal/domain/model"
	"github.com/ericfisherdev/credvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.EntryStore = (*EntryRepo)(nil)

// EntryRepo is the SQLite implementation of the EntryStore port.
// It persists ciphertext blobs as-is; encryption and decryption belong
// to the application layer.
type EntryRepo struct {
	db *DB
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Upsert inserts the entry or replaces username and secret in place when
// the service already exists. The conflict target makes insert-or-update
// a single atomic statement, so there is no check-then-write race and the
// upsert is fully committed when ExecContext returns (one write per
// statement, autocommit).
func (r *EntryRepo) Upsert(ctx context.Context, service, username string, secret []byte) error {
	const query = `
		INSERT INTO entries (service, username, secret, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(service) DO UPDATE SET
			username = excluded.username,
			secret = excluded.secret,
			created_at = excluded.created_at`
	_, err := r.db.Writer.ExecContext(ctx, query, service, username, secret, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert entry %q: %w", service, err)
	}
	return nil
}

// Find returns the entry for the given service, or driven.ErrEntryNotFound.
func (r *EntryRepo) Find(ctx context.Context, service string) (*model.Entry, error) {
	const query = `SELECT id, service, username, secret, created_at FROM entries WHERE service = ?`

	var entry model.Entry
	var createdAt string
	err := r.db.Reader.QueryRowContext(ctx, query, service).
		Scan(&entry.ID, &entry.Service, &entry.Username, &entry.Secret, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, driven.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entry %q: %w", service, err)
	}

	entry.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for entry %q: %w", service, err)
	}
	return &entry, nil
}

// ListServices returns all stored service names in lexicographic order.
func (r *EntryRepo) ListServices(ctx context.Context) ([]string, error) {
	const query = `SELECT service FROM entries ORDER BY service`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []string
	for rows.Next() {
		var service string
		if err := rows.Scan(&service); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}

	return services, nil
}

// Delete removes the entry for the given service. Returns false when no
// row was removed.
func (r *EntryRepo) Delete(ctx context.Context, service string) (bool, error) {
	const query = `DELETE FROM entries WHERE service = ?`

	res, err := r.db.Writer.ExecContext(ctx, query, service)
	if err != nil {
		return false, fmt.Errorf("delete entry %q: %w", service, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete entry %q: rows affected: %w", service, err)
	}
	return affected > 0, nil
}

// parseTime parses the timestamp formats SQLite may hand back depending
// on how the value was written.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}
