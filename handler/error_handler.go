package handler

import (
	"go-auth-api/common"
	"net/http"
)

// ErrorHandlingMiddleware adapts an AppError-returning handler into a
// plain http.HandlerFunc, sending whatever error comes back. Handlers
// that already wrote their response return nil.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
