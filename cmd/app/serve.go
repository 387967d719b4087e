package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"devmatch/internal/service"
	"devmatch/internal/storage/pgx"
	"devmatch/internal/storage/redis"
	transport "devmatch/internal/transport/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := pgx.NewPgxStorage(ctx, cfg.DatabaseURL, pgx.Options{
		MaxConns:     cfg.DBMaxConns,
		MinConns:     cfg.DBMinConns,
		TxMaxRetries: cfg.TxMaxRetries,
	})
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	var users service.UserStorage = st
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		users = redis.NewUserCache(client, st, cfg.UserCacheTTL, log)
		log.Info("user cache enabled", zap.Duration("ttl", cfg.UserCacheTTL))
	}

	projects := service.NewProjectService(
		st,    // ProjectStorage
		st,    // MemberStorage
		users, // UserStorage
		st,    // txManager
		log,
	)
	applications := service.NewApplicationService(
		st,    // ProjectStorage
		st,    // MemberStorage
		st,    // ApplicationStorage
		users, // UserStorage
		st,    // txManager
		log,
	)

	handler := transport.NewHandler(projects, applications, st, log, transport.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	defer handler.Close()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}
	log.Info("HTTP server gracefully stopped")
	return nil
}
