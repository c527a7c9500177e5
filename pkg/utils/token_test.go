package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", "doctors-api", "clients", time.Hour)

	token, expiresAt, err := m.GenerateToken(42, "a@example.com", "User")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "doctors-api", claims.Issuer)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", "doctors-api", "clients", time.Hour)
	token, _, err := m.GenerateToken(1, "a@example.com", "Admin")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", "doctors-api", "clients", time.Hour)
		_, err := other.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("secret", "someone-else", "clients", time.Hour)
		_, err := other.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer))
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewTokenManager("secret", "doctors-api", "mobile", time.Hour)
		_, err := other.ValidateToken(token)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidAudience))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"})
		encoded, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.ValidateToken(encoded)
		assert.Error(t, err)
	})
}

func TestTokenManager_Expiry(t *testing.T) {
	base := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", "doctors-api", "clients", 30*time.Minute)
	m.now = func() time.Time { return base }

	token, expiresAt, err := m.GenerateToken(7, "d@example.com", "Doctor")
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(base.Add(30*time.Minute)))

	m.now = func() time.Time { return base.Add(29 * time.Minute) }
	_, err = m.ValidateToken(token)
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(31 * time.Minute) }
	_, err = m.ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestClaims_UserID(t *testing.T) {
	for _, sub := range []string{"", "0", "abc", "-3"} {
		c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}
		_, err := c.UserID()
		assert.ErrorIs(t, err, ErrInvalidToken, "subject %q", sub)
	}
}
