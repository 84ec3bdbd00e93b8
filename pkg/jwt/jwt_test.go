package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestParseTokenValid(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenTampered(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, time.Hour)
	require.NoError(t, err)

	// 破坏签名段
	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(testSecret, tampered)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("other-secret"), 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenMissingUserID(t *testing.T) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseTokenWithoutExpiry(t *testing.T) {
	// 对端签发的令牌可能不带 exp，按有效处理
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"user_id": 7,
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
}
