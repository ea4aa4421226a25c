package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/cli/config"
	controller "github.com/secmon-lab/o365ops/pkg/controller/http"
	"github.com/secmon-lab/o365ops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		runtimeCfg runtimeConfig
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: joinFlags(serverCfg.Flags(), runtimeCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting o365ops server",
				slog.Any("server", serverCfg),
				slog.Any("store", runtimeCfg.store),
				slog.Any("admin_api", runtimeCfg.adminAPI),
				slog.Any("notification", runtimeCfg.notification),
			)

			rt, err := runtimeCfg.build(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			uc := controller.NewUseCases(
				usecase.NewUsers(rt.store, rt.admin, rt.notifier),
				usecase.NewActivation(rt.store, rt.admin, rt.notifier),
				rt.notifier,
			)

			server, err := controller.NewServer(ctx, serverCfg.Addr, uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
