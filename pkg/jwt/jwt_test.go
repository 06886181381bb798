package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey, 30*time.Minute)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateToken(t *testing.T) {
	service := NewService("test-secret-key", 30*time.Minute)

	token, err := service.GenerateToken("basho@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key", 30*time.Minute)
	email := "basho@example.com"

	token, err := service.GenerateToken(email)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, email, claims.Subject)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key", 30*time.Minute)

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1", 30*time.Minute)
	service2 := NewService("secret-key-2", 30*time.Minute)

	token, err := service1.GenerateToken("basho@example.com")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-secret-key", -time.Minute)

	token, err := service.GenerateToken("basho@example.com")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key", 30*time.Minute)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestGenerateToken_ExpirySet(t *testing.T) {
	service := NewService("test-secret-key", 30*time.Minute)

	token, err := service.GenerateToken("basho@example.com")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}
