// Package retryhttp is the outbound HTTP client shared by the gateway adapters.
// Transport errors, 429 and 5xx responses are retried with exponential backoff;
// every other response is handed back to the caller untouched.
package retryhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxBodyBytes = 1 << 20

var errRetryableStatus = errors.New("retryable status")

// Observer receives one call per logical request, after retries settle.
type Observer interface {
	ObserveGatewayCall(gateway, operation string, statusCode int, err error, elapsed time.Duration)
}

type Config struct {
	// Gateway names the provider in spans, metrics and errors.
	Gateway         string
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	Observer        Observer
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestFunc builds a fresh request for every attempt so bodies can be re-sent.
type RequestFunc func(ctx context.Context) (*http.Request, error)

type Client struct {
	cfg    Config
	http   *http.Client
	tracer trace.Tracer
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		tracer: otel.Tracer("laundry/gateway"),
	}
}

// Do runs newRequest until it yields a non-retryable outcome or the retry budget is spent.
// When retries run out on a 429/5xx the last response is returned without error.
func (c *Client) Do(ctx context.Context, operation string, newRequest RequestFunc) (Response, error) {
	ctx, span := c.tracer.Start(ctx, c.cfg.Gateway+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("gateway", c.cfg.Gateway)))
	defer span.End()

	start := time.Now()
	var (
		last     Response
		attempts int
	)

	op := func() error {
		attempts++
		req, err := newRequest(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}

		last = Response{StatusCode: resp.StatusCode, Body: body}
		if retryable(resp.StatusCode) {
			return errRetryableStatus
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.InitialInterval
	b.MaxElapsedTime = 0
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, c.cfg.MaxRetries), ctx))
	if errors.Is(err, errRetryableStatus) {
		err = nil
	}

	span.SetAttributes(attribute.Int("http.status_code", last.StatusCode), attribute.Int("attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else if !last.OK() {
		span.SetStatus(codes.Error, http.StatusText(last.StatusCode))
	}
	if c.cfg.Observer != nil {
		c.cfg.Observer.ObserveGatewayCall(c.cfg.Gateway, operation, last.StatusCode, err, time.Since(start))
	}

	if err != nil {
		return Response{}, err
	}
	return last, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
