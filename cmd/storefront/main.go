package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/backend"
	"github.com/AnujGadekar1/verto-eshop/internal/cart"
	"github.com/AnujGadekar1/verto-eshop/internal/catalog"
	"github.com/AnujGadekar1/verto-eshop/internal/config"
	"github.com/AnujGadekar1/verto-eshop/internal/httpapi"
	"github.com/AnujGadekar1/verto-eshop/internal/notification"
	"github.com/AnujGadekar1/verto-eshop/internal/storage"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Cart persistence: Redis when configured, in-process otherwise. The
	// storefront must come up either way; a missing store only costs
	// cross-session cart persistence.
	var cartStorage storage.CartStorage
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, falling back to in-memory cart storage", zap.Error(err))
			cartStorage = storage.NewMemoryStorage()
		} else {
			logger.Info("cart persistence on redis", zap.String("addr", cfg.RedisAddr))
			cartStorage = storage.NewRedisStorage(redisClient, cfg.CartKeyPrefix)
		}
	} else {
		cartStorage = storage.NewMemoryStorage()
	}

	backendClient := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, cfg.CheckoutUser, logger)
	notifications := notification.NewStore(cfg.NotificationTTL, logger)
	catalogSvc := catalog.NewService(backendClient, logger)
	cartStore := cart.NewStore(ctx, cartStorage, backendClient, notifications, logger)

	router := httpapi.NewRouter(cartStore, catalogSvc, notifications, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront starting",
			zap.String("port", cfg.HTTPPort),
			zap.String("backend", cfg.BackendBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("storefront stopped")
}
