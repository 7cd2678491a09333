package grpc

import (
	"context"

	"github.com/gruzdev-dev/codex-employees/core/domain"

	"google.golang.org/grpc"
)

const serviceName = "employees.v1.EmployeeService"

const (
	methodListEmployees  = "/" + serviceName + "/ListEmployees"
	methodAddEmployee    = "/" + serviceName + "/AddEmployee"
	methodUpdateEmployee = "/" + serviceName + "/UpdateEmployee"
	methodDeleteEmployee = "/" + serviceName + "/DeleteEmployee"
)

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	EmployeeList []*domain.Employee `json:"employeeList"`
}

type EmployeeRequest struct {
	Employee domain.EmployeeInput `json:"employee"`
}

type EmployeeResponse struct {
	Employee *domain.Employee `json:"employee"`
}

type DeleteEmployeeRequest struct {
	ID int `json:"id"`
}

type DeleteEmployeeResponse struct {
	RowsDeleted int `json:"rowsDeleted"`
}

type EmployeeServiceServer interface {
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	AddEmployee(context.Context, *EmployeeRequest) (*EmployeeResponse, error)
	UpdateEmployee(context.Context, *EmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployee(context.Context, *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error)
}

func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeServiceDesc, srv)
}

var EmployeeServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEmployees",
			Handler: unaryHandler(methodListEmployees, func(srv EmployeeServiceServer, ctx context.Context, req *ListEmployeesRequest) (any, error) {
				return srv.ListEmployees(ctx, req)
			}),
		},
		{
			MethodName: "AddEmployee",
			Handler: unaryHandler(methodAddEmployee, func(srv EmployeeServiceServer, ctx context.Context, req *EmployeeRequest) (any, error) {
				return srv.AddEmployee(ctx, req)
			}),
		},
		{
			MethodName: "UpdateEmployee",
			Handler: unaryHandler(methodUpdateEmployee, func(srv EmployeeServiceServer, ctx context.Context, req *EmployeeRequest) (any, error) {
				return srv.UpdateEmployee(ctx, req)
			}),
		},
		{
			MethodName: "DeleteEmployee",
			Handler: unaryHandler(methodDeleteEmployee, func(srv EmployeeServiceServer, ctx context.Context, req *DeleteEmployeeRequest) (any, error) {
				return srv.DeleteEmployee(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "employees/v1/employees",
}

// unaryHandler adapts a typed call into the handler shape grpc.MethodDesc
// expects, running it through the server's interceptor when one is set.
func unaryHandler[Req any](
	fullMethod string,
	call func(EmployeeServiceServer, context.Context, *Req) (any, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(EmployeeServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
