// Package reveal wraps the platform facility that recovers plaintext
// from byte blobs protected under a user or machine identity.
package reveal

import "errors"

// ErrNotAccessible is returned whenever the plaintext cannot be
// recovered. Callers get no further detail: the wrong identity, an
// unsupported platform and corrupt input all look the same.
var ErrNotAccessible = errors.New("protected data not accessible")

// Scope says which identity a blob was protected under.
type Scope int

const (
	CurrentUser Scope = iota
	LocalMachine
)

// Revealer recovers the plaintext of a protected blob.
type Revealer interface {
	Reveal(ciphertext []byte, scope Scope) ([]byte, error)
}
