package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
	"github.com/campushq/backoffice/internal/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func testUser(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:           1,
		Email:        "admin@example.edu",
		PasswordHash: hash,
		FullName:     "Admin",
		RoleID:       1,
		Role:         &models.Role{ID: 1, Name: models.AdministratorRole},
		IsActive:     active,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "s3cret!", true)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	svc := NewAuthService(repo, testJWTService(), zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "s3cret!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)
	assert.Equal(t, user.Email, resp.User.Email)

	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.AdministratorRole, claims.RoleName)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "s3cret!", true)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	svc := NewAuthService(repo, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	svc := NewAuthService(repo, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestLoginDisabledAccount(t *testing.T) {
	user := testUser(t, "s3cret!", false)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	svc := NewAuthService(repo, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "s3cret!",
	})
	assert.True(t, errors.Is(err, apperrors.ErrAccountDisabled))
}
