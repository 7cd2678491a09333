package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/gruzdev-dev/codex-employees/adapters/storage"
	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/services"
	"github.com/gruzdev-dev/codex-employees/pkg/logger"
	"github.com/gruzdev-dev/codex-employees/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	repo := storage.NewInMemoryEmployeeRepo(domain.NewEmployees())
	svc := services.NewEmployeeService(repo, logger.Discard(), metrics.NewMetrics(prometheus.NewRegistry()))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger.Discard())))
	RegisterEmployeeServiceServer(srv, NewEmployeesHandler(svc))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough://bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func intPtr(v int) *int {
	return &v
}

func TestEmployeesHandler_ListEmployees(t *testing.T) {
	client := newTestClient(t)

	employees, err := client.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, employees.Len())
	assert.Equal(t, storage.SeedEmployees(), employees.List())
}

func TestEmployeesHandler_AddEmployee(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.EmployeeInput
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:  "success",
			input: domain.EmployeeInput{ID: intPtr(4), FirstName: "Ann", LastName: "Lee", Email: "a@x.io", Title: "QA"},
		},
		{
			name:     "duplicate id",
			input:    domain.EmployeeInput{ID: intPtr(1), FirstName: "Ann", LastName: "Lee", Email: "a@x.io", Title: "QA"},
			wantCode: codes.AlreadyExists,
			wantMsg:  "ID Must Be Unique.",
		},
		{
			name:     "blank field",
			input:    domain.EmployeeInput{ID: intPtr(5), FirstName: " ", LastName: "Lee", Email: "a@x.io", Title: "QA"},
			wantCode: codes.InvalidArgument,
			wantMsg:  "All Fields Must Be Completed.",
		},
		{
			name:     "missing id",
			input:    domain.EmployeeInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.io", Title: "QA"},
			wantCode: codes.InvalidArgument,
			wantMsg:  "All Fields Must Be Completed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t)

			added, err := client.AddEmployee(context.Background(), tt.input)
			if tt.wantCode != codes.OK {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, st.Code())
				assert.Equal(t, tt.wantMsg, st.Message())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.ToEmployee(), added)
		})
	}
}

func TestEmployeesHandler_UpdateEmployee(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	updated, err := client.UpdateEmployee(ctx, domain.EmployeeInput{
		ID: intPtr(2), FirstName: "Suga", LastName: "Sally", Email: "s@x.io", Title: "Director",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.NewEmployee(2, "Suga", "Sally", "s@x.io", "Director"), updated)

	_, err = client.UpdateEmployee(ctx, domain.EmployeeInput{ID: intPtr(42), FirstName: "X"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.UpdateEmployee(ctx, domain.EmployeeInput{FirstName: "X"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEmployeesHandler_DeleteEmployee(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	rows, err := client.DeleteEmployee(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	_, err = client.DeleteEmployee(ctx, 2)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "Id Not Found", st.Message())

	employees, err := client.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, employees.Len())
}

func TestToStatus_Internal(t *testing.T) {
	err := toStatus(assert.AnError)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal server error", st.Message())
}
