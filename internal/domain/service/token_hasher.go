// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// TokenHasher defines the interface for hashing one-time secrets such as invitation tokens.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type TokenHasher interface {
	// Hash generates a salted hash from a plaintext token.
	Hash(token string) (string, error)

	// Check compares a plaintext token with a hash to see if they match.
	Check(token, hash string) bool
}
