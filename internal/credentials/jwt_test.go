package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenExpiry_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got := AccessTokenExpiry(signed)
	assert.True(t, got.Equal(exp), "expected %v, got %v", exp, got)
}

func TestAccessTokenExpiry_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.True(t, AccessTokenExpiry(signed).IsZero())
}

func TestAccessTokenExpiry_Garbage(t *testing.T) {
	assert.True(t, AccessTokenExpiry("").IsZero())
	assert.True(t, AccessTokenExpiry("not.a.jwt").IsZero())
	assert.True(t, AccessTokenExpiry("opaque-session-token").IsZero())
}
