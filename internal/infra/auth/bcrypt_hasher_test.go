package auth

import (
	"testing"

	"portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Team: &config.TeamConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("invite-token-1234")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "invite-token-1234", hash)

	assert.True(t, hasher.Check("invite-token-1234", hash))
	assert.False(t, hasher.Check("invite-token-9999", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_Cost(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "unset", cfg: &config.Config{Team: &config.TeamConfig{}}, want: bcrypt.DefaultCost},
		{name: "too high", cfg: &config.Config{Team: &config.TeamConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Team: &config.TeamConfig{BcryptCost: 5}}, want: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tc.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tc.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("token", "not-a-bcrypt-hash"))
}
