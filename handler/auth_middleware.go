package handler

import (
	"context"
	"go-auth-api/common"
	"net/http"
	"strings"
)

type contextKey string

// BearerTokenKey holds the raw bearer token extracted from the
// Authorization header. Verification happens in the auth service, which
// owns the token semantics; the middleware only peels the header.
const BearerTokenKey contextKey = "bearerToken"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			err.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), BearerTokenKey, headerParts[1])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
