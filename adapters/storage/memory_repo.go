package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/ports"
)

type inMemoryEmployeeRepo struct {
	mu        sync.RWMutex
	employees *domain.Employees
}

// NewInMemoryEmployeeRepo takes ownership of employees and seeds it with
// SeedEmployees when it is empty.
func NewInMemoryEmployeeRepo(employees *domain.Employees) ports.EmployeeRepository {
	if employees.Len() == 0 {
		employees.Set(append(employees.List(), SeedEmployees()...))
	}
	return &inMemoryEmployeeRepo{
		employees: employees,
	}
}

func SeedEmployees() []*domain.Employee {
	return []*domain.Employee{
		domain.NewEmployee(1, "Min", "Rahm", "mrahm1@gmail.com", "Developer"),
		domain.NewEmployee(2, "Suga", "Sally", "ssalt1@gmail.com", "Project Manager"),
		domain.NewEmployee(3, "Summer", "Winnie", "summawin@gmail.com", "Risk Analyst"),
	}
}

func (r *inMemoryEmployeeRepo) GetAll(_ context.Context) (*domain.Employees, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.employees.List()
	snapshot := make([]*domain.Employee, 0, len(list))
	for _, e := range list {
		snapshot = append(snapshot, copyOf(e))
	}
	return domain.NewEmployees(snapshot...), nil
}

func (r *inMemoryEmployeeRepo) Add(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyOf(employee)
	r.employees.Set(append(r.employees.List(), stored))
	return copyOf(stored), nil
}

func (r *inMemoryEmployeeRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	r.employees.Set(slices.Delete(r.employees.List(), idx, idx+1))
	return nil
}

func (r *inMemoryEmployeeRepo) Update(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(employee.ID)
	if idx < 0 {
		return nil, nil
	}
	existing := r.employees.List()[idx]
	existing.ApplyDetails(employee)
	return copyOf(existing), nil
}

func (r *inMemoryEmployeeRepo) FindByID(_ context.Context, id int) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, nil
	}
	return copyOf(r.employees.List()[idx]), nil
}

func (r *inMemoryEmployeeRepo) Exists(_ context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id) >= 0, nil
}

func (r *inMemoryEmployeeRepo) ExistsEmployee(ctx context.Context, employee *domain.Employee) (bool, error) {
	return r.Exists(ctx, employee.ID)
}

func (r *inMemoryEmployeeRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.employees.Len(), nil
}

// indexOf is a linear scan; the first match wins. Callers hold mu.
func (r *inMemoryEmployeeRepo) indexOf(id int) int {
	return slices.IndexFunc(r.employees.List(), func(e *domain.Employee) bool {
		return e.ID == id
	})
}

func copyOf(e *domain.Employee) *domain.Employee {
	c := *e
	return &c
}
