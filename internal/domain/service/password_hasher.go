// Package service defines the ports the use cases depend on: credential
// primitives, messaging, rendering and rate limiting.
package service

// PasswordHasher hashes and verifies staff passwords with an adaptive one-way hash.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. The comparison is constant-time.
	Check(password, hash string) bool
}
