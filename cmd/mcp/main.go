package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/travel-reservations-service/internal/config"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
	"github.com/preston-bernstein/travel-reservations-service/internal/server"
	"github.com/preston-bernstein/travel-reservations-service/internal/tools"
	"github.com/preston-bernstein/travel-reservations-service/internal/tools/mcpserver"
	"github.com/preston-bernstein/travel-reservations-service/internal/tracing"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Stdin, os.Stdout, os.Stderr))
}

// run serves MCP over in/out. Stdout carries protocol frames only, so logs go to errOut.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	envErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "travel-reservations-mcp",
		Version: appVersion,
		Output:  errOut,
	})
	if envErr != nil {
		logging.Warn(logger, "failed to read env file", "error", envErr)
	}

	stopTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Tracing.ServiceName,
		OtlpEndpoint: cfg.Tracing.OtlpEndpoint,
		OtlpInsecure: cfg.Tracing.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "tracing setup failed, continuing without traces", "error", err)
		stopTracing = func(context.Context) error { return nil }
	}
	defer func() { _ = stopTracing(context.Background()) }()

	recorder := metrics.NewRecorder()
	backend, err := server.NewBackend(ctx, cfg, logger, recorder)
	if err != nil {
		logging.Error(logger, "backend setup failed", err)
		return 1
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logging.Warn(logger, "backend close failed", "error", err)
		}
	}()

	reg := tools.NewRegistry(backend.Service, logger, recorder)
	s := mcpserver.New(reg, backend.Service, logger)

	if err := mcpserver.Serve(ctx, s, in, out, logger); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error(logger, "mcp server stopped", err)
		return 1
	}
	return 0
}
