package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/auth/domain"
)

func TestIssuer_Login(t *testing.T) {
	issuer := NewIssuer(config.AuthConfig{AdminPassword: "open sesame", SecretToken: "tok-123"})

	t.Run("correct password returns the configured token", func(t *testing.T) {
		token, err := issuer.Login("open sesame")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)

		again, err := issuer.Login("open sesame")
		require.NoError(t, err)
		assert.Equal(t, token, again)
	})

	t.Run("any other string is rejected", func(t *testing.T) {
		for _, candidate := range []string{"", "open", "open sesame ", "OPEN SESAME", "tok-123"} {
			token, err := issuer.Login(candidate)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "candidate %q", candidate)
			assert.Empty(t, token)
		}
	})

	t.Run("missing configuration", func(t *testing.T) {
		for _, cfg := range []config.AuthConfig{
			{},
			{AdminPassword: "pw"},
			{SecretToken: "tok"},
		} {
			_, err := NewIssuer(cfg).Login("pw")
			assert.ErrorIs(t, err, domain.ErrNotConfigured)
		}
	})
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify("tok-123", "tok-123"))
	assert.ErrorIs(t, Verify("", "tok-123"), domain.ErrUnauthorized)
	assert.ErrorIs(t, Verify(" tok-123", "tok-123"), domain.ErrUnauthorized)
	assert.ErrorIs(t, Verify("tok-12", "tok-123"), domain.ErrUnauthorized)
	assert.ErrorIs(t, Verify("tok-123", ""), domain.ErrNotConfigured)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("abc", "abc"))
	assert.False(t, Equal("abc", "abd"))
	assert.False(t, Equal("abc", "abcd"))
}
