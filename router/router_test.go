// file: router/router_test.go

package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-auth-api/handler"
	"go-auth-api/model"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() http.Handler {
	userRepo := repository.NewUserRepository()
	denylist := repository.NewTokenDenylist()
	tokenService := service.NewTokenService([]byte("router-test-secret"))
	authService := service.NewAuthService(userRepo, tokenService, denylist, 30*time.Minute, 7*24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	itemService := service.NewItemService(repository.NewItemRepository(), nil)
	itemHandler := handler.NewItemHandler(itemService)

	return router.NewRouter(authHandler, itemHandler)
}

func doJSON(t *testing.T, r http.Handler, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// TestAuthFlow_EndToEnd drives the whole auth lifecycle through the HTTP
// layer: register, login, profile, refresh, password change, re-login.
func TestAuthFlow_EndToEnd(t *testing.T) {
	r := newTestServer()

	// Register
	rr := doJSON(t, r, "POST", "/api/v1/auth/register", "", model.RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var registered model.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &registered))
	assert.Equal(t, 1, registered.ID)
	assert.NotContains(t, rr.Body.String(), "password")

	// Duplicate registrations
	rr = doJSON(t, r, "POST", "/api/v1/auth/register", "", model.RegisterRequest{
		Username: "alice", Email: "other@x.com", Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Username already registered")

	rr = doJSON(t, r, "POST", "/api/v1/auth/register", "", model.RegisterRequest{
		Username: "alice2", Email: "alice@x.com", Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email already registered")

	// Login
	rr = doJSON(t, r, "POST", "/api/v1/auth/login", "", model.LoginRequest{
		Username: "alice", Password: "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var tokens model.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tokens))
	assert.Equal(t, "bearer", tokens.TokenType)

	// Profile
	rr = doJSON(t, r, "GET", "/api/v1/auth/me", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@x.com","username":"alice","is_active":true}`, rr.Body.String())

	// Refresh rotates the pair
	rr = doJSON(t, r, "POST", "/api/v1/auth/refresh", "", model.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var refreshed model.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &refreshed))
	assert.NotEqual(t, tokens.AccessToken, refreshed.AccessToken)

	// The consumed refresh token no longer works
	rr = doJSON(t, r, "POST", "/api/v1/auth/refresh", "", model.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Change password
	rr = doJSON(t, r, "POST", "/api/v1/auth/change-password", refreshed.AccessToken, model.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpass456",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Password updated successfully")

	// Old password no longer logs in, new one does
	rr = doJSON(t, r, "POST", "/api/v1/auth/login", "", model.LoginRequest{
		Username: "alice", Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, r, "POST", "/api/v1/auth/login", "", model.LoginRequest{
		Username: "alice", Password: "newpass456",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	// Logout is a stateless acknowledgment
	rr = doJSON(t, r, "POST", "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Successfully logged out")
}

func TestAuthEndpoints_Unauthorized(t *testing.T) {
	r := newTestServer()

	t.Run("missing authorization header", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Authorization header is required")
	})

	t.Run("bad authorization header format", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid authorization header format")
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := doJSON(t, r, "GET", "/api/v1/auth/me", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Could not validate credentials")
	})

	t.Run("wrong username and wrong password responses match", func(t *testing.T) {
		rr := doJSON(t, r, "POST", "/api/v1/auth/register", "", model.RegisterRequest{
			Username: "bob", Email: "bob@x.com", Password: "password123",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		wrongPass := doJSON(t, r, "POST", "/api/v1/auth/login", "", model.LoginRequest{
			Username: "bob", Password: "wrongpassword",
		})
		unknownUser := doJSON(t, r, "POST", "/api/v1/auth/login", "", model.LoginRequest{
			Username: "nobody", Password: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.JSONEq(t, wrongPass.Body.String(), unknownUser.Body.String())
	})
}

func TestItemEndpoints(t *testing.T) {
	r := newTestServer()

	rr := doJSON(t, r, "GET", "/api/v1/items", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = doJSON(t, r, "POST", "/api/v1/items", "", model.ItemRequest{
		Name: "Widget", Description: "A high-quality widget", Price: 29.99,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created model.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	rr = doJSON(t, r, "GET", "/api/v1/items/1", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, "PUT", "/api/v1/items/1", "", model.ItemRequest{
		Name: "Gadget", Price: 49.99,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Gadget")

	rr = doJSON(t, r, "DELETE", "/api/v1/items/1", "", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, r, "GET", "/api/v1/items/1", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Item not found")
}
