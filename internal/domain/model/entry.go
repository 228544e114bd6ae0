package model

import "time"

// Entry is one stored credential: the service it belongs to, the username
// for that service, and the secret as an opaque authenticated-encryption
// blob (nonce || ciphertext || tag). The secret stays encrypted at this
// layer; decryption happens in the application layer with the session key.
type Entry struct {
	ID        int64
	Service   string
	Username  string
	Secret    []byte
	CreatedAt time.Time
}
