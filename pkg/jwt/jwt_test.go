package jwt

import (
	"strings"
	"testing"
	"time"

	"healthcare-management/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, Expiry: 24 * time.Hour})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("test-secret")

	token, err := svc.GenerateToken(42, "u@x.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "u@x.com", claims.Email)
	assert.WithinDuration(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, err := svc.GenerateToken(1, "u@x.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := newService("test-secret")

	token, err := svc.GenerateToken(1, "u@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := newService("other-secret").GenerateToken(1, "u@x.com")
	require.NoError(t, err)

	_, err = newService("test-secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Email:  "u@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService("test-secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newService("test-secret").ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = newService("test-secret").ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCarriesOnlyIdentityClaims(t *testing.T) {
	token, err := newService("test-secret").GenerateToken(5, "u@x.com")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, float64(5), claims["user_id"])
	assert.Equal(t, "u@x.com", claims["email"])
	assert.NotContains(t, claims, "token_id")
}
