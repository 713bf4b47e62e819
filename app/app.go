// File: app/app.go
package app

import (
	"context"
	"go-auth-api/config"
	"go-auth-api/db"
	"go-auth-api/handler"
	"go-auth-api/logger"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	// All state is in-process: the user store, the item store, and the
	// refresh-token denylist live for the process lifetime only.

	userRepo := repository.NewUserRepository()
	denylist := repository.NewTokenDenylist()
	tokenService := service.NewTokenService([]byte(config.AppConfig.JWT.SecretKey))
	authService := service.NewAuthService(
		userRepo,
		tokenService,
		denylist,
		config.AppConfig.JWT.AccessTokenTTL,
		config.AppConfig.JWT.RefreshTokenTTL,
	)
	authHandler := handler.NewAuthHandler(authService)

	// The item cache is optional; without Redis the item service reads
	// straight from the store.
	var cache service.ICacheClient
	if config.AppConfig.Redis.Host != "" {
		redisClient, err := db.ConnectRedis()
		if err != nil {
			logger.Log.WithError(err).Warn("Redis unavailable, item caching disabled")
		} else {
			cache = redisClient
		}
	}

	itemRepo := repository.NewItemRepository()
	itemService := service.NewItemService(itemRepo, cache)
	itemHandler := handler.NewItemHandler(itemService)

	r := router.NewRouter(authHandler, itemHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
