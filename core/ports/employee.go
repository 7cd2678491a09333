package ports

import (
	"context"

	"github.com/gruzdev-dev/codex-employees/core/domain"
)

//go:generate mockgen -source=employee.go -destination=employee_mocks.go -package=ports EmployeeRepository

// EmployeeRepository is primitive CRUD over the employee collection. It
// applies no business rules; lookups return the first record whose id matches.
type EmployeeRepository interface {
	GetAll(ctx context.Context) (*domain.Employees, error)
	Add(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	// Delete is a no-op when no record matches.
	Delete(ctx context.Context, id int) error
	// Update returns (nil, nil) when no record matches.
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	// FindByID returns (nil, nil) when no record matches.
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
	Exists(ctx context.Context, id int) (bool, error)
	ExistsEmployee(ctx context.Context, employee *domain.Employee) (bool, error)
	Count(ctx context.Context) (int, error)
}
