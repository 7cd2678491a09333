package grpc

import (
	"context"
	"errors"

	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/services"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type EmployeesHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeesHandler(employeeService *services.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{
		employeeService: employeeService,
	}
}

func (h *EmployeesHandler) ListEmployees(ctx context.Context, _ *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	employees, err := h.employeeService.GetAllEmployees(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	list := employees.List()
	if list == nil {
		list = []*domain.Employee{}
	}
	return &ListEmployeesResponse{EmployeeList: list}, nil
}

func (h *EmployeesHandler) AddEmployee(ctx context.Context, req *EmployeeRequest) (*EmployeeResponse, error) {
	added, err := h.employeeService.AddEmployee(ctx, req.Employee)
	if err != nil {
		return nil, toStatus(err)
	}

	return &EmployeeResponse{Employee: added}, nil
}

func (h *EmployeesHandler) UpdateEmployee(ctx context.Context, req *EmployeeRequest) (*EmployeeResponse, error) {
	updated, err := h.employeeService.UpdateEmployee(ctx, req.Employee)
	if err != nil {
		return nil, toStatus(err)
	}

	return &EmployeeResponse{Employee: updated}, nil
}

func (h *EmployeesHandler) DeleteEmployee(ctx context.Context, req *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error) {
	rows, err := h.employeeService.DeleteEmployee(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &DeleteEmployeeResponse{RowsDeleted: rows}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrIDExists):
		return status.Error(codes.AlreadyExists, domain.ErrIDExists.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, domain.ErrInvalidInput.Error())
	case errors.Is(err, domain.ErrIDNotFound):
		return status.Error(codes.NotFound, domain.ErrIDNotFound.Error())
	default:
		return status.Error(codes.Internal, domain.ErrInternal.Error())
	}
}
