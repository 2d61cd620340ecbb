package http

import (
	"time"

	"laundry/internal/pkg/logging"
	"laundry/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// observe extracts W3C trace context, assigns a request id, stores a
// request-scoped logger in the context, and records the request once the
// error handler has produced the final status.
func observe(base *zap.Logger, recorder *metrics.Recorder) echo.MiddlewareFunc {
	propagator := otel.GetTextMapPropagator()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			fields := []zap.Field{zap.String("request_id", rid)}
			if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
				fields = append(fields,
					zap.String("trace_id", sc.TraceID().String()),
					zap.String("span_id", sc.SpanID().String()))
			}
			logger := base.With(fields...)
			c.SetRequest(req.WithContext(logging.ContextWithLogger(ctx, logger)))

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)
			status := c.Response().Status

			recorder.ObserveHTTPRequest(req.Method, c.Path(), status, elapsed)
			logger.Info("request",
				zap.String("method", req.Method),
				zap.String("route", c.Path()),
				zap.Int("status", status),
				zap.Duration("latency", elapsed))
			return nil
		}
	}
}
