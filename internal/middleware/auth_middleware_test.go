package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/auth"
)

func authTestRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	m := NewAuthMiddleware(jwtService)
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"roleName": c.GetString(ContextRoleName),
			"email":    c.GetString(ContextEmail),
		})
	})
	return router
}

func newTestJWT(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "test",
	})
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newTestJWT(time.Hour)
	router := authTestRouter(jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{
		ID:     7,
		Email:  "editor@example.edu",
		RoleID: 2,
		Role:   &models.Role{ID: 2, Name: "Editor"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Editor")
	assert.Contains(t, w.Body.String(), "editor@example.edu")
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := authTestRouter(newTestJWT(time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := authTestRouter(newTestJWT(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expiredService := newTestJWT(-time.Minute)
	router := authTestRouter(expiredService)

	token, _, err := expiredService.GenerateToken(&models.User{ID: 7, Email: "x@example.edu"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	issuer := newTestJWT(time.Hour)
	verifier := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	router := authTestRouter(verifier)

	token, _, err := issuer.GenerateToken(&models.User{ID: 7, Email: "x@example.edu"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
