// Package vaultcrypto implements the vault's cryptographic primitives:
// passphrase-based key derivation and authenticated encryption of entry
// secrets.
package vaultcrypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count. It may be tuned
	// upward over time as hardware speeds up, never downward for
	// existing vaults.
	DefaultIterations = 390_000

	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32
)

// DeriveKey derives a KeySize-byte key from the master passphrase and the
// vault salt using PBKDF2-HMAC-SHA256. Deterministic: the same passphrase
// and salt always yield the same key.
func DeriveKey(passphrase string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iterations, KeySize, sha256.New)
}
