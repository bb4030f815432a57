package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sign(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "identity", Audience: []string{"pharma-search-srv"}})
	require.NoError(t, err)

	valid := Claims{
		Email: "analyst@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "identity",
			Audience:  jwt.ClaimStrings{"pharma-search-srv"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("valid token", func(t *testing.T) {
		p, err := m.Verify(sign(t, valid, testSecret))
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, "analyst@example.com", p.Username)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := m.Verify(sign(t, valid, "ffffffffffffffffffffffffffffffff"))
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := valid
		c.Issuer = "someone-else"
		_, err := m.Verify(sign(t, c, testSecret))
		assert.Error(t, err)
	})
}

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}
