package vaultcrypto

import (
	"encoding/json"
	"fmt"
	"io"
)

// Secret wraps key material so accidental formatting or JSON marshaling
// stays redacted, and so the session key can be wiped when a vault
// session ends.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return "[SECRET]" }

// Format implements fmt.Formatter so `%v`, `%x` and friends are redacted.
func (s Secret) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, "[SECRET]")
}

// MarshalJSON redacts the secret in JSON output.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal("[SECRET]") }

// Zero overwrites the underlying bytes. Called when the owning session
// ends; the slice must not be used afterwards.
func (s Secret) Zero() {
	for i := range s {
		s[i] = 0
	}
}
