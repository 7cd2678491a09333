package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gruzdev-dev/codex-employees/pkg/logger"
	"github.com/gruzdev-dev/codex-employees/pkg/metrics"
	"github.com/gruzdev-dev/codex-employees/pkg/requestid"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teapot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := mux.NewRouter()
	router.Use(RequestID())
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		seen, _ = requestid.FromCtx(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(requestid.Header))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "abc-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rr.Header().Get(requestid.Header))
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	router := mux.NewRouter()
	router.Use(RequestID(), Logging(logger.NewWithWriter(logger.EnvLocal, &buf)))
	router.HandleFunc("/brew", teapot)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	out := buf.String()
	assert.Contains(t, out, "request served")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/brew")
	assert.Contains(t, out, "request_id=")
}

func TestMetrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/employees/{id}", teapot)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/employees/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/employees/2", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodDelete, "/employees/{id}", "418")), 0)
}

func TestRateLimit(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RateLimit(NewLimiter(0.001, 1)))
	router.HandleFunc("/", teapot)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestRateLimit_Disabled(t *testing.T) {
	assert.Nil(t, NewLimiter(0, 10))

	router := mux.NewRouter()
	router.Use(RateLimit(nil))
	router.HandleFunc("/", teapot)

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	router := mux.NewRouter()
	router.NotFoundHandler = Metrics(m)(http.NotFoundHandler())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/2", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")), 0)
}
