package handler

import (
	"encoding/json"
	"net/http"
)

// Root godoc
// @Summary      Root endpoint
// @Description  Returns a welcome message. Use this to verify the API is running.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to the API"})
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Returns the health status of the API. Use this for load balancer health checks and monitoring.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
