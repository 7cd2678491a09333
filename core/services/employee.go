package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/ports"
	"github.com/gruzdev-dev/codex-employees/pkg/logger"
	"github.com/gruzdev-dev/codex-employees/pkg/metrics"
)

const (
	opList   = "list"
	opAdd    = "add"
	opUpdate = "update"
	opDelete = "delete"
)

// rowsDeleted is what a successful delete reports; it is not a count.
const rowsDeleted = 1

type EmployeeService struct {
	repo    ports.EmployeeRepository
	log     *slog.Logger
	metrics *metrics.Metrics

	// mu makes each check-then-act sequence atomic with respect to other writers.
	mu sync.Mutex
}

// NewEmployeeService builds the service and publishes the size of the store
// it starts with.
func NewEmployeeService(repo ports.EmployeeRepository, log *slog.Logger, m *metrics.Metrics) *EmployeeService {
	s := &EmployeeService{
		repo:    repo,
		log:     log,
		metrics: m,
	}
	s.refreshRecords(context.Background(), "init")
	return s
}

func (s *EmployeeService) initLogger(op string) *slog.Logger {
	return s.log.With(
		slog.String("op", "EmployeeService."+op),
	)
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) (*domain.Employees, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		err = fmt.Errorf("%w: failed to list employees: %v", domain.ErrInternal, err)
		s.observe(ctx, opList, err)
		return nil, err
	}
	s.observe(ctx, opList, nil)
	return employees, nil
}

// AddEmployee rejects a taken id before looking at the other fields, so a
// duplicate with blank fields reports ErrIDExists.
func (s *EmployeeService) AddEmployee(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.addEmployee(ctx, input)
	s.observe(ctx, opAdd, err)
	if err != nil {
		return nil, err
	}

	s.initLogger("AddEmployee").InfoContext(ctx, "employee added", slog.Int("id", added.ID))
	return added, nil
}

func (s *EmployeeService) addEmployee(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	if input.HasID() {
		exists, err := s.repo.Exists(ctx, *input.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check employee: %v", domain.ErrInternal, err)
		}
		if exists {
			return nil, domain.ErrIDExists
		}
	}

	if !input.Complete() {
		return nil, domain.ErrInvalidInput
	}

	added, err := s.repo.Add(ctx, input.ToEmployee())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to add employee: %v", domain.ErrInternal, err)
	}
	return added, nil
}

// DeleteEmployee returns the number of rows removed, which is always 1 on success.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.deleteEmployee(ctx, id)
	s.observe(ctx, opDelete, err)
	if err != nil {
		return 0, err
	}

	s.initLogger("DeleteEmployee").InfoContext(ctx, "employee deleted", slog.Int("id", id))
	return rowsDeleted, nil
}

func (s *EmployeeService) deleteEmployee(ctx context.Context, id int) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: failed to check employee: %v", domain.ErrInternal, err)
	}
	if !exists {
		return domain.ErrIDNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: failed to delete employee: %v", domain.ErrInternal, err)
	}
	return nil
}

// UpdateEmployee overwrites the name, email and title of an existing record.
// The fields are not validated.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.updateEmployee(ctx, input)
	s.observe(ctx, opUpdate, err)
	if err != nil {
		return nil, err
	}

	s.initLogger("UpdateEmployee").InfoContext(ctx, "employee updated", slog.Int("id", updated.ID))
	return updated, nil
}

func (s *EmployeeService) updateEmployee(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	if !input.HasID() {
		return nil, domain.ErrIDNotFound
	}

	exists, err := s.repo.Exists(ctx, *input.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check employee: %v", domain.ErrInternal, err)
	}
	if !exists {
		return nil, domain.ErrIDNotFound
	}

	updated, err := s.repo.Update(ctx, input.ToEmployee())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update employee: %v", domain.ErrInternal, err)
	}
	if updated == nil {
		return nil, domain.ErrIDNotFound
	}
	return updated, nil
}

func (s *EmployeeService) observe(ctx context.Context, op string, err error) {
	result := resultLabel(err)
	s.metrics.Operations.WithLabelValues(op, result).Inc()

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInternal):
		s.initLogger(op).ErrorContext(ctx, "employee operation failed", logger.Err(err))
	default:
		s.initLogger(op).DebugContext(ctx, "employee operation rejected", slog.String("result", result))
	}

	if err != nil {
		return
	}
	s.refreshRecords(ctx, op)
}

func (s *EmployeeService) refreshRecords(ctx context.Context, op string) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.initLogger(op).WarnContext(ctx, "failed to count employees", logger.Err(err))
		return
	}
	s.metrics.Records.Set(float64(count))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrIDExists):
		return "id_exists"
	case errors.Is(err, domain.ErrIDNotFound):
		return "id_not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
