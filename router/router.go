package router

import (
	"net/http"

	"go-auth-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-auth-api/docs"
)

func NewRouter(authHandler *handler.AuthHandler, itemHandler *handler.ItemHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.Handle("POST /api/v1/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/v1/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/v1/auth/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /api/v1/auth/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))

	mux.Handle("GET /api/v1/auth/me",
		handler.AuthMiddleware(handler.ErrorHandlingMiddleware(authHandler.Me)))
	mux.Handle("POST /api/v1/auth/change-password",
		handler.AuthMiddleware(handler.ErrorHandlingMiddleware(authHandler.ChangePassword)))

	mux.Handle("GET /api/v1/items", handler.ErrorHandlingMiddleware(itemHandler.ListItems))
	mux.Handle("POST /api/v1/items", handler.ErrorHandlingMiddleware(itemHandler.CreateItem))
	mux.Handle("GET /api/v1/items/{id}", handler.ErrorHandlingMiddleware(itemHandler.GetItem))
	mux.Handle("PUT /api/v1/items/{id}", handler.ErrorHandlingMiddleware(itemHandler.UpdateItem))
	mux.Handle("DELETE /api/v1/items/{id}", handler.ErrorHandlingMiddleware(itemHandler.DeleteItem))

	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}
