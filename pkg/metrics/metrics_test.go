package metrics_test

import (
	"testing"

	"github.com/gruzdev-dev/codex-employees/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m := metrics.NewMetrics(reg)
	m.Records.Set(3)
	m.Operations.WithLabelValues("add", "ok").Inc()

	assert.InDelta(t, 3, testutil.ToFloat64(m.Records), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Operations.WithLabelValues("add", "ok")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "employees_records")
	assert.Contains(t, names, "employees_operations_total")
}

func TestNewRegistry(t *testing.T) {
	reg := metrics.NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
