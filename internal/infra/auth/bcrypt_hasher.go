package auth

import (
	"portal/config"
	"portal/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the TokenHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. An unset or out-of-range
// team.bcryptCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.TokenHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Team != nil && cfg.Team.BcryptCost >= bcrypt.MinCost && cfg.Team.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Team.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext token.
func (h *bcryptHasher) Hash(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), h.cost)

	return string(bytes), err
}

// Check compares a plaintext token with a bcrypt hash.
func (h *bcryptHasher) Check(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
