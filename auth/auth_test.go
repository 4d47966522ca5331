package auth

import (
	"strings"
	"testing"

	"github.com/o1egl/paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"techstore-admin/models"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(testKey, nil, WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	return a
}

func TestLoginFixedUsers(t *testing.T) {
	a := newTestAuthenticator(t)

	for email, role := range map[string]models.Role{
		"admin@example.com": models.RoleAdmin,
		"user@example.com":  models.RoleUser,
		"owner@example.com": models.RoleSuperAdmin,
	} {
		t.Run(email, func(t *testing.T) {
			session, err := a.Login(email, "password")
			require.NoError(t, err)
			assert.Equal(t, email, session.User.Email)
			assert.Equal(t, role, session.User.Role)
			assert.NotEmpty(t, session.Token)

			user, ok := a.Lookup(session.Token)
			assert.True(t, ok)
			assert.Equal(t, session.User, user)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestAuthenticator(t)

	cases := []struct{ email, password string }{
		{"admin@example.com", "wrong"},
		{"admin@example.com", ""},
		{"Admin@example.com", "password"},
		{"nobody@example.com", "password"},
		{"admin@example.com", "password" + strings.Repeat("x", 80)},
	}
	for _, tc := range cases {
		_, err := a.Login(tc.email, tc.password)
		assert.ErrorIs(t, err, ErrUnauthorized, "%s / %q", tc.email, tc.password)
	}
}

func TestTokensAreDistinctAndDecryptable(t *testing.T) {
	a := newTestAuthenticator(t)

	first, err := a.Login("admin@example.com", "password")
	require.NoError(t, err)
	second, err := a.Login("admin@example.com", "password")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	var claims paseto.JSONToken
	var footer string
	require.NoError(t, paseto.NewV2().Decrypt(first.Token, testKey, &claims, &footer))
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, tokenFooter, footer)
	assert.True(t, claims.Expiration.IsZero())
}

func TestLogout(t *testing.T) {
	a := newTestAuthenticator(t)

	session, err := a.Login("user@example.com", "password")
	require.NoError(t, err)

	a.Logout(session.Token)
	_, ok := a.Lookup(session.Token)
	assert.False(t, ok)

	a.Logout("never-issued")
	_, ok = a.Lookup("never-issued")
	assert.False(t, ok)
}

func TestNewAuthenticatorRejectsShortKey(t *testing.T) {
	_, err := NewAuthenticator([]byte("short"), nil)
	assert.Error(t, err)
}
