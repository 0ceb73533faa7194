// Package service declares stateless domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher hashes and verifies account passwords. The domain
// never sees the algorithm behind it.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that fail the
	// configured strength policy.
	ValidatePasswordStrength(password string) error
}
