package auth

import (
	"testing"

	"rangriti/config"
	domainerrors "rangriti/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(policy *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: policy,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	policy := &config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}

	testCases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "meets policy", password: "Password123!", wantErr: false},
		{name: "empty password", password: "", wantErr: true},
		{name: "too short", password: "Pw1!", wantErr: true},
		{name: "missing uppercase", password: "password123!", wantErr: true},
		{name: "missing lowercase", password: "PASSWORD123!", wantErr: true},
		{name: "missing digit", password: "Password!!!!", wantErr: true},
		{name: "missing special character", password: "Password1234", wantErr: true},
	}

	hasher := newTestHasher(policy)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength_NoPolicy(t *testing.T) {
	hasher := newTestHasher(nil)

	require.NoError(t, hasher.ValidatePasswordStrength("anything"))
	require.Error(t, hasher.ValidatePasswordStrength(""))
}
