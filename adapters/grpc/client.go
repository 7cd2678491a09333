package grpc

import (
	"context"

	"github.com/gruzdev-dev/codex-employees/core/domain"

	"google.golang.org/grpc"
)

// Client calls the employee service over a gRPC connection. Errors carry the
// server's status; use status.Code to tell the failure kinds apart.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func (c *Client) ListEmployees(ctx context.Context) (*domain.Employees, error) {
	out := new(ListEmployeesResponse)
	if err := c.invoke(ctx, methodListEmployees, &ListEmployeesRequest{}, out); err != nil {
		return nil, err
	}
	return domain.NewEmployees(out.EmployeeList...), nil
}

func (c *Client) AddEmployee(ctx context.Context, employee domain.EmployeeInput) (*domain.Employee, error) {
	out := new(EmployeeResponse)
	if err := c.invoke(ctx, methodAddEmployee, &EmployeeRequest{Employee: employee}, out); err != nil {
		return nil, err
	}
	return out.Employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, employee domain.EmployeeInput) (*domain.Employee, error) {
	out := new(EmployeeResponse)
	if err := c.invoke(ctx, methodUpdateEmployee, &EmployeeRequest{Employee: employee}, out); err != nil {
		return nil, err
	}
	return out.Employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) (int, error) {
	out := new(DeleteEmployeeResponse)
	if err := c.invoke(ctx, methodDeleteEmployee, &DeleteEmployeeRequest{ID: id}, out); err != nil {
		return 0, err
	}
	return out.RowsDeleted, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	return c.conn.Invoke(ctx, method, in, out, grpc.CallContentSubtype(codecName))
}
