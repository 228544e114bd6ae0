package application

import (
	"context"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/credvault/internal/domain/model"
	"github.com/ericfisherdev/credvault/internal/domain/port/driven"
	"github.com/ericfisherdev/credvault/internal/vaultcrypto"
)

// --- in-memory fakes for the driven ports ---

type fakeEntryStore struct {
	entries map[string]*model.Entry
	nextID  int64
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{entries: make(map[string]*model.Entry)}
}

func (f *fakeEntryStore) Upsert(_ context.Context, service, username string, secret []byte) error {
	if existing, ok := f.entries[service]; ok {
		existing.Username = username
		existing.Secret = secret
		return nil
	}
	f.nextID++
	f.entries[service] = &model.Entry{ID: f.nextID, Service: service, Username: username, Secret: secret}
	return nil
}

func (f *fakeEntryStore) Find(_ context.Context, service string) (*model.Entry, error) {
	entry, ok := f.entries[service]
	if !ok {
		return nil, driven.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryStore) ListServices(_ context.Context) ([]string, error) {
	var services []string
	for svc := range f.entries {
		services = append(services, svc)
	}
	sort.Strings(services)
	return services, nil
}

func (f *fakeEntryStore) Delete(_ context.Context, service string) (bool, error) {
	if _, ok := f.entries[service]; !ok {
		return false, nil
	}
	delete(f.entries, service)
	return true, nil
}

type fakeMetadataStore struct {
	salt []byte
}

func (f *fakeMetadataStore) GetOrCreateSalt(_ context.Context) ([]byte, error) {
	if f.salt == nil {
		f.salt = make([]byte, model.SaltSize)
		if _, err := rand.Read(f.salt); err != nil {
			return nil, err
		}
	}
	return f.salt, nil
}

func newTestVault(entries driven.EntryStore, metadata driven.MetadataStore) *VaultService {
	return NewVaultService(entries, metadata, vaultcrypto.DefaultIterations)
}

// --- tests ---

func TestVaultService_LockedOperationsFail(t *testing.T) {
	vault := newTestVault(newFakeEntryStore(), &fakeMetadataStore{})
	ctx := context.Background()

	err := vault.AddOrUpdate(ctx, "github", "alice", "pw")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = vault.Retrieve(ctx, "github")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = vault.ListServices(ctx)
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = vault.Delete(ctx, "github")
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestVaultService_OpenRejectsEmptyPassphrase(t *testing.T) {
	vault := newTestVault(newFakeEntryStore(), &fakeMetadataStore{})

	err := vault.Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
	assert.False(t, vault.Unlocked())
}

func TestVaultService_AddRetrieveRoundTrip(t *testing.T) {
	store := newFakeEntryStore()
	meta := &fakeMetadataStore{}
	vault := newTestVault(store, meta)
	ctx := context.Background()

	require.NoError(t, vault.Open(ctx, "correct-horse"))
	require.True(t, vault.Unlocked())

	require.NoError(t, vault.AddOrUpdate(ctx, "email", "bob", "s3cr3t"))

	// The stored blob must not be the plaintext.
	assert.NotEqual(t, []byte("s3cr3t"), store.entries["email"].Secret)

	cred, err := vault.Retrieve(ctx, "email")
	require.NoError(t, err)
	assert.Equal(t, "email", cred.Service)
	assert.Equal(t, "bob", cred.Username)
	assert.Equal(t, "s3cr3t", cred.Password)
}

func TestVaultService_WrongPassphraseFailsIntegrity(t *testing.T) {
	store := newFakeEntryStore()
	meta := &fakeMetadataStore{}
	ctx := context.Background()

	vault := newTestVault(store, meta)
	require.NoError(t, vault.Open(ctx, "correct-horse"))
	require.NoError(t, vault.AddOrUpdate(ctx, "email", "bob", "s3cr3t"))
	vault.Close()

	// A second session over the same store with a different passphrase
	// derives a different key; decryption must fail, not return garbage.
	reopened := newTestVault(store, meta)
	require.NoError(t, reopened.Open(ctx, "wrong-passphrase"))

	_, err := reopened.Retrieve(ctx, "email")
	assert.ErrorIs(t, err, vaultcrypto.ErrIntegrity)
}

func TestVaultService_RetrieveMissing(t *testing.T) {
	vault := newTestVault(newFakeEntryStore(), &fakeMetadataStore{})
	ctx := context.Background()

	require.NoError(t, vault.Open(ctx, "correct-horse"))

	_, err := vault.Retrieve(ctx, "nonexistent")
	assert.ErrorIs(t, err, driven.ErrEntryNotFound)
}

func TestVaultService_UpsertKeepsOneEntryPerService(t *testing.T) {
	store := newFakeEntryStore()
	vault := newTestVault(store, &fakeMetadataStore{})
	ctx := context.Background()

	require.NoError(t, vault.Open(ctx, "correct-horse"))
	require.NoError(t, vault.AddOrUpdate(ctx, "github", "alice", "pw1"))
	require.NoError(t, vault.AddOrUpdate(ctx, "github", "alice2", "pw2"))

	services, err := vault.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"github"}, services)

	cred, err := vault.Retrieve(ctx, "github")
	require.NoError(t, err)
	assert.Equal(t, "alice2", cred.Username)
	assert.Equal(t, "pw2", cred.Password)
}

func TestVaultService_DeleteSemantics(t *testing.T) {
	vault := newTestVault(newFakeEntryStore(), &fakeMetadataStore{})
	ctx := context.Background()

	require.NoError(t, vault.Open(ctx, "correct-horse"))

	removed, err := vault.Delete(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, vault.AddOrUpdate(ctx, "email", "bob", "s3cr3t"))

	removed, err = vault.Delete(ctx, "email")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = vault.Retrieve(ctx, "email")
	assert.ErrorIs(t, err, driven.ErrEntryNotFound)
}

func TestVaultService_CloseLocksAndWipesKey(t *testing.T) {
	vault := newTestVault(newFakeEntryStore(), &fakeMetadataStore{})
	ctx := context.Background()

	require.NoError(t, vault.Open(ctx, "correct-horse"))

	key := vault.key
	vault.Close()

	assert.False(t, vault.Unlocked())
	assert.Equal(t, make(vaultcrypto.Secret, vaultcrypto.KeySize), key, "key bytes must be zeroed on close")

	err := vault.AddOrUpdate(ctx, "github", "alice", "pw")
	assert.ErrorIs(t, err, ErrVaultLocked)

	// Closing twice is harmless.
	vault.Close()
}

func TestNewVaultService_EnforcesIterationFloor(t *testing.T) {
	vault := NewVaultService(newFakeEntryStore(), &fakeMetadataStore{}, 1000)
	assert.Equal(t, vaultcrypto.DefaultIterations, vault.iterations)

	raised := NewVaultService(newFakeEntryStore(), &fakeMetadataStore{}, vaultcrypto.DefaultIterations+10_000)
	assert.Equal(t, vaultcrypto.DefaultIterations+10_000, raised.iterations)
}
