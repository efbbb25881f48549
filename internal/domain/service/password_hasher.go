// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies salted password hashes.
// The algorithm stays behind this interface so stored hashes can migrate.
type PasswordHasher interface {
	// NewSalt returns a fresh random salt.
	NewSalt() (string, error)

	// Hash derives a hash from a plaintext password and a salt. It is deterministic.
	Hash(password, salt string) string

	// Compare reports whether password and salt produce hash, in constant time.
	Compare(password, salt, hash string) bool
}
