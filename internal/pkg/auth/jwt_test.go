package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:     42,
		Email:  "admin@campushq.local",
		RoleID: 1,
		Role:   &models.Role{ID: 1, Name: models.AdministratorRole},
	}
}

func newService(secret string, exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      secret,
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newService("test-secret", time.Hour)

	token, expiresIn, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@campushq.local", claims.Email)
	assert.Equal(t, int64(1), claims.RoleID)
	assert.Equal(t, models.AdministratorRole, claims.RoleName)
	assert.Equal(t, "test", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenExpired(t *testing.T) {
	service := newService("test-secret", -time.Minute)

	token, _, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newService("secret-a", time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	_, err = newService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newService("test-secret", time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenWithoutRole(t *testing.T) {
	service := newService("test-secret", time.Hour)

	token, _, err := service.GenerateToken(&models.User{ID: 9, Email: "x@example.edu"})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.RoleName)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Admin123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Admin123!", hash)

	assert.True(t, CheckPassword(hash, "Admin123!"))
	assert.False(t, CheckPassword(hash, "admin123!"))
	assert.False(t, CheckPassword("not-a-hash", "Admin123!"))
}
