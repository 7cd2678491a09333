package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	grpcAdapter "github.com/gruzdev-dev/codex-employees/adapters/grpc"
	"github.com/gruzdev-dev/codex-employees/configs"

	"google.golang.org/grpc"
)

type Server struct {
	cfg        *configs.Config
	log        *slog.Logger
	grpcServer *grpc.Server
}

func NewServer(cfg *configs.Config, handler *grpcAdapter.EmployeesHandler, log *slog.Logger) *Server {
	opts := []grpc.ServerOption{
		grpc.UnaryInterceptor(grpcAdapter.LoggingInterceptor(log)),
	}

	s := grpc.NewServer(opts...)
	grpcAdapter.RegisterEmployeeServiceServer(s, handler)

	return &Server{
		cfg:        cfg,
		log:        log.With(slog.String("op", "servers.grpc")),
		grpcServer: s,
	}
}

func (s *Server) Start(ctx context.Context) error {
	addr := s.cfg.GRPCAddr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(ctx, lis)
}

// Serve runs the server on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.log.Info("starting grpc server", slog.String("addr", lis.Addr().String()))
	errCh := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		return fmt.Errorf("gRPC server error: %w", err)
	}
}

func (s *Server) Stop() {
	s.log.Info("stopping grpc server")
	s.grpcServer.GracefulStop()
}
