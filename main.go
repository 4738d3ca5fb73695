package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"cookbook/config"
	"cookbook/db"
	"cookbook/logging"
	"cookbook/middleware"
	"cookbook/models"
	"cookbook/mq"
	"cookbook/ratelim"
	"cookbook/rdx"
	"cookbook/routes"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn *redis.Client
	if cfg.NeedsRedis() {
		conn = rdx.Connect(cfg.RedisURL, cfg.RedisPassword)
	}

	backend, err := db.Open(ctx, db.Options{
		Kind:       cfg.StoreBackend,
		DataDir:    cfg.DataDir,
		MongoURI:   cfg.MongoURI,
		MongoDB:    cfg.MongoDB,
		SQLitePath: cfg.SQLitePath,
		Redis:      conn,
	})
	if err != nil {
		slog.Error("Failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	store := db.NewStore(backend)
	slog.Info("Store opened", "backend", cfg.StoreBackend)

	var events mq.Emitter = mq.LogEmitter{}
	if cfg.Events == "redis" {
		events = mq.NewRedisEmitter(conn)
		go func() {
			err := mq.Subscribe(ctx, conn, func(c models.Change) {
				slog.Debug("Change event", "collection", c.Collection, "method", c.Method, "id", c.ID)
			})
			if err != nil {
				slog.Warn("Change event subscription ended", "error", err)
			}
		}()
	}

	limiter := ratelim.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	go limiter.Run(time.Minute, ctx.Done())

	router := routes.NewRouter(store, events, routes.Options{
		JWTSecret:   cfg.JWTSecret,
		RateLimiter: limiter,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	// logging → security headers → metrics → CORS → router
	handler := middleware.Logging(
		middleware.SecurityHeaders(
			middleware.Metrics(
				middleware.MaxBytes(cfg.MaxBodyBytes)(corsHandler),
			),
		),
	)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "addr", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ListenAndServe error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		slog.Warn("Failed to close store", "error", err)
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			slog.Warn("Failed to close redis", "error", err)
		}
	}
	slog.Info("Server stopped cleanly")
}
