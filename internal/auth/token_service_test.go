package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret")
	userID := uuid.New()

	token, err := svc.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate(uuid.New())
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsMalformed(t *testing.T) {
	svc := NewTokenService("secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret")

	// Sign a token whose validity window already closed.
	claims := &Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsUnsignedAlgorithm(t *testing.T) {
	svc := NewTokenService("secret")

	claims := &Claims{UserID: uuid.New().String()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
