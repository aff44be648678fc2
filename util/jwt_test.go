package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// signAt issues a token as if the clock read issuedAt, so expiry behavior
// can be checked around the 7 day boundary without sleeping.
func signAt(t *testing.T, trainerID string, issuedAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   trainerID,
		Issuer:    "lontso-fitness",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("trainer-001", testSecret)
	require.NoError(t, err)

	subject, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "trainer-001", subject)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("trainer-001", testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("other-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTMalformed(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTNearExpiry(t *testing.T) {
	// Issued 6 days and 23 hours ago: still inside the 7 day window.
	token := signAt(t, "trainer-001", time.Now().Add(-(6*24+23)*time.Hour))
	subject, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "trainer-001", subject)
}

func TestValidateJWTExpired(t *testing.T) {
	// Issued 7 days and 1 hour ago: past the window.
	token := signAt(t, "trainer-001", time.Now().Add(-(7*24+1)*time.Hour))
	_, err := ValidateJWT(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWTMissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "lontso-fitness",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
