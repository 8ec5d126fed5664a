package httptransport

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"fastdrc/internal/platform/metrics"
	"fastdrc/pkg/testutil"
)

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			Handler: NewHandler(nil),
			Health: map[string]HealthCheck{
				"redis": func(context.Context) error { return nil },
			},
		})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok","redis":"ok"}`, rr.Body.String())
	})

	t.Run("degraded", func(t *testing.T) {
		router := NewRouter(RouterConfig{
			Handler: NewHandler(nil),
			Health: map[string]HealthCheck{
				"redis": func(context.Context) error { return errors.New("connection refused") },
			},
		})
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "connection refused")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(reg)
	router := NewRouter(RouterConfig{Handler: NewHandler(nil), Metrics: m, Gatherer: reg})

	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `fastdrc_http_requests_total{route="/health",status="200"} 1`)
}
