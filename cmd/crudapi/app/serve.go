package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/ucsb-cs156/crudapi/internal/api/handler"
	"github.com/ucsb-cs156/crudapi/internal/config"
	"github.com/ucsb-cs156/crudapi/internal/repositories"
	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"github.com/ucsb-cs156/crudapi/pkg/bslog"
)

type Serve struct {
	cmd *cobra.Command
}

func NewServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <options>",
		Short: "run the API server",
		Args:  cobra.NoArgs,
	}
	cobra.CheckErr(config.RegisterFlags(cmd.Flags()))

	c := &Serve{cmd: cmd}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(cmd.Context()) }
	return cmd
}

func (c *Serve) Run(ctx context.Context) error {
	cfg, err := config.Load(c.cmd.Flags())
	if err != nil {
		return err
	}
	logger := bslog.Setup(cfg.Server.Env, c.cmd.ErrOrStderr())

	users, err := jwt.ParseUsers(cfg.Auth.Users)
	if err != nil {
		return fmt.Errorf("invalid users: %w", err)
	}
	if len(cfg.Auth.Users) == 0 {
		logger.Warn("no users configured, login is disabled")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := repositories.Open(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("could not open store: %w", err)
	}
	defer repos.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	authority := jwt.NewAuthority([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	srv := &http.Server{
		Addr:              cfg.API.Port,
		Handler:           handler.NewHandler(repos, authority, users, reg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.String("addr", cfg.API.Port),
			slog.String("store", cfg.Store.Driver),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", slog.Duration("timeout", cfg.API.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
