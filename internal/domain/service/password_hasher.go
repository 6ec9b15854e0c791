// Package service declares the outbound ports of the domain: hashing,
// tokens, mail transport, alerts and event publishing.
package service

// PasswordHasher hashes account passwords. Registration, password reset
// and password change all store its output; login compares against it.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
