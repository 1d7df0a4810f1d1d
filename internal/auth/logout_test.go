package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-backend/internal/database"
)

func TestLogoutSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accessToken, err := GetAccessToken(t, testDB, testTokens, database.TestUserApplicant1.Email, database.TestSeedPassword)
	require.NoError(t, err)

	blacklistStore := NewInMemoryBlacklistStore(ctx)
	logoutController := NewLogoutController(blacklistStore, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request, err = http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)
	c.Request.Header.Set("Authorization", "Bearer "+accessToken)

	// Parse and set claims in context (simulating middleware behavior)
	token, err := testTokens.ValidateToken(accessToken)
	require.NoError(t, err)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	c.Set("claims", claims)

	logoutController.LogoutHandler(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Successfully logged out", resp["message"])

	isBlacklisted, err := blacklistStore.IsBlacklisted(ctx, claims.ID)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted, "Token should be blacklisted after logout")
}

func TestLogoutMissingToken(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logoutController := NewLogoutController(NewInMemoryBlacklistStore(ctx), nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	var err error
	c.Request, err = http.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, err)

	logoutController.LogoutHandler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "authorization header")
}

func TestLogoutMissingClaims(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logoutController := NewLogoutController(NewInMemoryBlacklistStore(ctx), nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer some.token.value")

	logoutController.LogoutHandler(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type failingBlacklist struct{}

func (failingBlacklist) IsBlacklisted(context.Context, string) (bool, error) { return false, nil }
func (failingBlacklist) AddToBlacklist(context.Context, string, time.Time) error {
	return assert.AnError
}

func TestLogoutStoreFailure(t *testing.T) {
	logoutController := NewLogoutController(failingBlacklist{}, nil)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer some.token.value")
	c.Set("claims", &jwt.RegisteredClaims{
		ID:        "jti",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	logoutController.LogoutHandler(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
