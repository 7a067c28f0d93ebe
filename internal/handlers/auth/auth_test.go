package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakelandia_back_end/internal/middleware"
	"cakelandia_back_end/internal/utils"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", Login)

	admin := r.Group("/api", middleware.AuthRequired(), middleware.RequireAdmin)
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesUsableToken(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	r := newRouter()

	w := login(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	// Le jeton émis passe le middleware admin.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWithArgon2Hash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	r := newRouter()

	assert.Equal(t, http.StatusOK, login(t, r, "admin", "s3cret").Code)
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin", "wrong").Code)

	// Un hash mal formé ne doit jamais laisser passer.
	t.Setenv("ADMIN_PASSWORD_HASH", "plaintext")
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin", "plaintext").Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	r := newRouter()

	assert.Equal(t, http.StatusUnauthorized, login(t, r, "admin", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "intruder", "s3cret").Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
