package metrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"laundry/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder

	assert.NotPanics(t, func() {
		r.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
		r.ObserveGatewayCall("midtrans", "status", 200, nil, time.Millisecond)
		r.NotificationsDispatched(1, 1)
		r.PaymentsReconciled(3, 1, 1)
		r.JobRun("dispatch_notifications", nil)
	})
}

func TestRecorder_HTTPRequests(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveHTTPRequest("POST", "/api/orders", 201, 20*time.Millisecond)
	r.ObserveHTTPRequest("POST", "/api/orders", 201, 30*time.Millisecond)
	r.ObserveHTTPRequest("GET", "", 404, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "laundry_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP laundry_http_requests_total HTTP requests by method, route template and status code.
# TYPE laundry_http_requests_total counter
laundry_http_requests_total{method="GET",route="unmatched",status="404"} 1
laundry_http_requests_total{method="POST",route="/api/orders",status="201"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "laundry_http_requests_total"))
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "deadline" }
func (timeoutErr) Timeout() bool { return true }

func TestRecorder_GatewayOutcomes(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveGatewayCall("biteship", "rates", 200, nil, time.Millisecond)
	r.ObserveGatewayCall("biteship", "rates", 503, errors.New("unavailable"), time.Millisecond)
	r.ObserveGatewayCall("biteship", "rates", 422, nil, time.Millisecond)
	r.ObserveGatewayCall("biteship", "rates", 0, errors.New("connection refused"), time.Millisecond)
	r.ObserveGatewayCall("biteship", "rates", 0, timeoutErr{}, time.Millisecond)
	r.ObserveGatewayCall("biteship", "rates", 0, context.DeadlineExceeded, time.Millisecond)

	expected := `
# HELP laundry_gateway_calls_total Outbound provider calls by gateway, operation and outcome.
# TYPE laundry_gateway_calls_total counter
laundry_gateway_calls_total{gateway="biteship",operation="rates",outcome="client_error"} 1
laundry_gateway_calls_total{gateway="biteship",operation="rates",outcome="ok"} 1
laundry_gateway_calls_total{gateway="biteship",operation="rates",outcome="server_error"} 1
laundry_gateway_calls_total{gateway="biteship",operation="rates",outcome="timeout"} 2
laundry_gateway_calls_total{gateway="biteship",operation="rates",outcome="transport_error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "laundry_gateway_calls_total"))
}

func TestRecorder_JobCounters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := metrics.NewRecorder(reg)

	r.NotificationsDispatched(4, 1)
	r.PaymentsReconciled(5, 2, 1)
	r.JobRun("reconcile_payments", nil)
	r.JobRun("reconcile_payments", errors.New("db down"))

	expected := `
# HELP laundry_payments_reconciled_total Pending payments polled at the gateway, by outcome.
# TYPE laundry_payments_reconciled_total counter
laundry_payments_reconciled_total{outcome="failed"} 1
laundry_payments_reconciled_total{outcome="unchanged"} 2
laundry_payments_reconciled_total{outcome="updated"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "laundry_payments_reconciled_total"))

	expected = `
# HELP laundry_notifications_dispatched_total Outbox messages handed to the notifier, by outcome.
# TYPE laundry_notifications_dispatched_total counter
laundry_notifications_dispatched_total{outcome="failed"} 1
laundry_notifications_dispatched_total{outcome="sent"} 4
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "laundry_notifications_dispatched_total"))

	count, err := testutil.GatherAndCount(reg, "laundry_jobs_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
