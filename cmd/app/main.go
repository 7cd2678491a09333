package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	grpcServer "github.com/gruzdev-dev/codex-employees/servers/grpc"
	httpServer "github.com/gruzdev-dev/codex-employees/servers/http"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	container, err := BuildContainer()
	if err != nil {
		log.Fatalf("Fatal error building container: %v", err)
	}

	err = container.Invoke(func(
		httpSrv *httpServer.Server,
		grpcSrv *grpcServer.Server,
		logger *slog.Logger,
	) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return httpSrv.Start(ctx)
		})

		g.Go(func() error {
			return grpcSrv.Start(ctx)
		})

		logger.Info("employee service started")
		return g.Wait()
	})

	if err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
}
