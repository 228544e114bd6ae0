package model

import "time"

// SaltSize is the fixed length of the vault salt in bytes.
const SaltSize = 16

// VaultMetadata is the singleton record binding a vault file to its key
// derivation salt. Created once on first access, immutable thereafter.
// Losing the salt makes every entry permanently undecryptable, even with
// the correct passphrase.
type VaultMetadata struct {
	Salt      []byte
	CreatedAt time.Time
}
