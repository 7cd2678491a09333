package main

import (
	"log/slog"

	grpcAdapter "github.com/gruzdev-dev/codex-employees/adapters/grpc"
	httpAdapter "github.com/gruzdev-dev/codex-employees/adapters/http"
	storageAdapter "github.com/gruzdev-dev/codex-employees/adapters/storage"
	"github.com/gruzdev-dev/codex-employees/configs"
	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/services"
	"github.com/gruzdev-dev/codex-employees/pkg/logger"
	"github.com/gruzdev-dev/codex-employees/pkg/metrics"
	grpcServer "github.com/gruzdev-dev/codex-employees/servers/grpc"
	httpServer "github.com/gruzdev-dev/codex-employees/servers/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
)

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(configs.NewConfig); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *configs.Config) *slog.Logger {
		return logger.New(cfg.Env)
	}); err != nil {
		return nil, err
	}

	if err := container.Provide(metrics.NewRegistry); err != nil {
		return nil, err
	}
	if err := container.Provide(func(reg *prometheus.Registry) prometheus.Registerer {
		return reg
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(metrics.NewMetrics); err != nil {
		return nil, err
	}

	if err := container.Provide(func() *domain.Employees {
		return domain.NewEmployees()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(storageAdapter.NewInMemoryEmployeeRepo); err != nil {
		return nil, err
	}
	if err := container.Provide(services.NewEmployeeService); err != nil {
		return nil, err
	}

	if err := container.Provide(httpAdapter.NewHandler); err != nil {
		return nil, err
	}
	if err := container.Provide(grpcAdapter.NewEmployeesHandler); err != nil {
		return nil, err
	}
	if err := container.Provide(httpServer.NewServer); err != nil {
		return nil, err
	}
	if err := container.Provide(grpcServer.NewServer); err != nil {
		return nil, err
	}

	return container, nil
}
