// handler/health_handler_test.go
package handler_test

import (
	"go-auth-api/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_Integration(t *testing.T) {
	// Setup router. For this test, handlers can be nil.
	r := router.NewRouter(nil, nil)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"healthy"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestRoot_Integration(t *testing.T) {
	r := router.NewRouter(nil, nil)

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"message":"Welcome to the API"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}
