// Package metrics owns the service's Prometheus collectors. A nil *Recorder
// is valid and records nothing.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laundry"

type Recorder struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	gatewayCalls    *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	notifications   *prometheus.CounterVec
	reconciled      *prometheus.CounterVec
	jobRuns         *prometheus.CounterVec
}

// NewRecorder registers every collector on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatewayCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "gateway", Name: "calls_total",
			Help: "Outbound provider calls by gateway, operation and outcome.",
		}, []string{"gateway", "operation", "outcome"}),
		gatewayDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "gateway", Name: "call_duration_seconds",
			Help:    "Outbound provider call latency including retries.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"gateway", "operation"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "notifications", Name: "dispatched_total",
			Help: "Outbox messages handed to the notifier, by outcome.",
		}, []string{"outcome"}),
		reconciled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "payments", Name: "reconciled_total",
			Help: "Pending payments polled at the gateway, by outcome.",
		}, []string{"outcome"}),
		jobRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "jobs", Name: "runs_total",
			Help: "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
	}
}

func (r *Recorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveGatewayCall satisfies retryhttp.Observer.
func (r *Recorder) ObserveGatewayCall(gateway, operation string, statusCode int, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.gatewayCalls.WithLabelValues(gateway, operation, gatewayOutcome(statusCode, err)).Inc()
	r.gatewayDuration.WithLabelValues(gateway, operation).Observe(elapsed.Seconds())
}

func (r *Recorder) NotificationsDispatched(sent, failed int) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues("sent").Add(float64(sent))
	r.notifications.WithLabelValues("failed").Add(float64(failed))
}

func (r *Recorder) PaymentsReconciled(checked, updated, failed int) {
	if r == nil {
		return
	}
	r.reconciled.WithLabelValues("updated").Add(float64(updated))
	r.reconciled.WithLabelValues("failed").Add(float64(failed))
	r.reconciled.WithLabelValues("unchanged").Add(float64(max(checked-updated-failed, 0)))
}

func (r *Recorder) JobRun(job string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.jobRuns.WithLabelValues(job, result).Inc()
}

func gatewayOutcome(statusCode int, err error) string {
	var timeout interface{ Timeout() bool }
	switch {
	case errors.As(err, &timeout) && timeout.Timeout():
		return "timeout"
	case err != nil && statusCode == 0:
		return "transport_error"
	case statusCode >= 500:
		return "server_error"
	case statusCode >= 400:
		return "client_error"
	case err != nil:
		return "error"
	default:
		return "ok"
	}
}
