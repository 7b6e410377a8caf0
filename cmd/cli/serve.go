package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"favorites-conformance/internal/reference"
	"favorites-conformance/internal/reference/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	addr     string
	tokenTTL time.Duration
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local reference implementation of the contract",
		Long: `Serve starts an in-process favorites service implementing the documented
contract. It is intended for validating the harness and dry-running scenario
files, not for production use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides REFERENCE_ADDR)")
	cmd.Flags().DurationVar(&opts.tokenTTL, "token-ttl", 0, "session TTL (overrides REFERENCE_TOKEN_TTL)")

	return cmd
}

func runServe(opts *serveOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.tokenTTL > 0 {
		cfg.TokenTTL = opts.tokenTTL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	module, err := reference.NewModule(cfg, log)
	if err != nil {
		return err
	}

	app := module.NewApp()

	log.Info("reference favorites service listening",
		zap.String("addr", cfg.Addr),
		zap.Duration("token_ttl", cfg.TokenTTL),
	)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(cfg.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Warn("server forced to shutdown", zap.Error(err))
		}
	}

	return nil
}
