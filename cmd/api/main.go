// @title        User Roles API
// @version      1.0
// @description  Create and list roles and the users assigned to them.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/user-roles-api/internal/api"
	"github.com/99minutos/user-roles-api/internal/api/handler"
	"github.com/99minutos/user-roles-api/internal/core/ports"
	"github.com/99minutos/user-roles-api/internal/core/service"
	mongodb "github.com/99minutos/user-roles-api/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/user-roles-api/internal/infrastructure/db/redis"
	"github.com/99minutos/user-roles-api/internal/pkg/config"
	"github.com/99minutos/user-roles-api/pkg/logger"
)

const (
	ReadTimeout       = 5 * time.Second
	WriteTimeout      = 10 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load config")
	}

	l := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "user-roles-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("connect to mongo")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			l.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		l.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	checks := map[string]handler.Pinger{
		"mongodb": handler.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		}),
	}

	var idempotency ports.IdempotencyStore
	if cfg.Redis.Enabled() {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			l.Fatal().Err(err).Msg("connect to redis")
		}
		defer rdb.Close()

		idempotency = redisdb.NewIdempotencyStore(rdb)
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	} else {
		l.Info().Msg("redis not configured, idempotent replay disabled")
	}

	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	router := api.NewRouter(api.Dependencies{
		Roles:          service.NewRoleService(roleRepo, l.With().Str("component", "role_service").Logger()),
		Users:          service.NewUserService(userRepo, roleRepo, l.With().Str("component", "user_service").Logger()),
		Idempotency:    idempotency,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
		Checks:         checks,
		Log:            l,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Prefix:         cfg.APIPrefix,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	go func() {
		l.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	waitSignal(cancel, server, cfg.ShutdownTimeout)
}

func waitSignal(cancel context.CancelFunc, server *http.Server, timeout time.Duration) {
	l := logger.Get()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info().Str("signal", sig.String()).Msg("got OS signal")

	shutdown(cancel, server, timeout)
}

func shutdown(cancel context.CancelFunc, server *http.Server, timeout time.Duration) {
	l := logger.Get()

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server shutdown")
	}
	l.Info().Msg("http server stopped")
}
