package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/grandstay/hotel-api/internal/api"
	"github.com/grandstay/hotel-api/internal/api/metrics"
	"github.com/grandstay/hotel-api/internal/core/domain"
	"github.com/grandstay/hotel-api/internal/core/ports"
	"github.com/grandstay/hotel-api/internal/core/service"
	"github.com/grandstay/hotel-api/internal/infrastructure/config"
	mongodb "github.com/grandstay/hotel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/grandstay/hotel-api/internal/infrastructure/db/redis"
	"github.com/grandstay/hotel-api/internal/infrastructure/http/handlers"
	"github.com/grandstay/hotel-api/internal/infrastructure/security"
	"github.com/grandstay/hotel-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Connect to MongoDB (and Redis when REDIS_ADDR is set), ensure the
unique indexes exist, seed the bootstrap credential and serve HTTP until
SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Debug, Service: "hotel-api"})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	store := mongodb.NewStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	var (
		rdb  *goredis.Client
		idem ports.IdempotencyStore
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redisdb.NewIdempotencyStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency store enabled")
	}

	tokens, err := security.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}
	recorder := metrics.NewRecorder()
	authService := service.NewAuthService(store.Credentials, security.NewBcryptHasher(0), tokens, recorder, log)

	if err := bootstrapCredential(ctx, authService, cfg.Bootstrap); err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Auth:      authService,
		Rooms:     service.NewRoomService(store.Rooms, store.Customers, idem, recorder, log),
		Customers: service.NewCustomerService(store.Customers, store.Rooms, idem, recorder, log),
		Readiness: handlers.NewHealthDependenciesHandler(db, rdb),
	}, api.Options{
		Logger:       log,
		Debug:        cfg.Debug,
		AuthRequired: cfg.AuthRequired,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Bool("auth_required", cfg.AuthRequired).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// bootstrapCredential stores the configured credential unless it already exists.
func bootstrapCredential(ctx context.Context, auth ports.AuthService, b config.BootstrapConfig) error {
	if b.Username == "" || b.Password == "" {
		return nil
	}
	log := logger.Get()
	err := auth.AddCredential(ctx, b.Username, b.Password)
	switch {
	case err == nil:
		log.Info().Str("username", b.Username).Msg("bootstrap credential created")
	case errors.Is(err, domain.ErrAlreadyExists):
		log.Debug().Str("username", b.Username).Msg("bootstrap credential already present")
	default:
		return fmt.Errorf("bootstrap credential: %w", err)
	}
	return nil
}
