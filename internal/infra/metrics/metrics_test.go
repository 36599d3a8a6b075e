package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := New()

	m.GateDenied("admin")
	m.GateDenied("admin")
	m.GateDenied("super_admin")
	m.AggregationSourceFailed("orders")
	m.AuditWriteFailed()
	m.BroadcastBatch(service.BatchPublished)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gateDenied.WithLabelValues("admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gateDenied.WithLabelValues("super_admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aggregationFailure.WithLabelValues("orders")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.auditWriteFailure))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.broadcastBatches.WithLabelValues(service.BatchPublished)))
}

func TestMetricsHandler(t *testing.T) {
	m := New()
	m.AuditWriteFailed()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "portal_audit_write_failures_total 1")
}
