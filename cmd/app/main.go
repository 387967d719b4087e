package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devmatch/internal/config"
	"devmatch/internal/logger"
	"devmatch/internal/storage/pgx"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devmatch",
		Short: "Project collaboration backend",
		Long: `devmatch lets users publish projects and apply to join other people's teams.

Examples:
  # Apply the database schema
  devmatch migrate

  # Start the HTTP API
  devmatch serve`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			if err := st.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			log.Info("schema applied")
			return nil
		},
	}
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}
