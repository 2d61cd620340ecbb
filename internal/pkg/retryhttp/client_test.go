package retryhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	calls  int
	status int
	err    error
}

func (o *recordingObserver) ObserveGatewayCall(_, _ string, statusCode int, err error, _ time.Duration) {
	o.calls++
	o.status = statusCode
	o.err = err
}

func newTestClient(obs Observer, retries uint64) *Client {
	return New(Config{
		Gateway:         "test",
		Timeout:         time.Second,
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		Observer:        obs,
	})
}

func get(url string) RequestFunc {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

func TestClient_RetriesServerErrorsUntilSuccess(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()
	obs := &recordingObserver{}

	resp, err := newTestClient(obs, 3).Do(t.Context(), "get", get(srv.URL))

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, 1, obs.calls)
	assert.Equal(t, http.StatusOK, obs.status)
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	resp, err := newTestClient(nil, 3).Do(t.Context(), "get", get(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_ReturnsLastResponseWhenRetriesRunOut(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	resp, err := newTestClient(nil, 2).Do(t.Context(), "get", get(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(3), hits.Load())
}

func TestClient_TransportErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	obs := &recordingObserver{}

	_, err := newTestClient(obs, 1).Do(t.Context(), "get", get(url))

	require.Error(t, err)
	assert.Equal(t, 1, obs.calls)
	assert.Error(t, obs.err)
}

func TestClient_RequestBuildErrorIsPermanent(t *testing.T) {
	calls := 0
	_, err := newTestClient(nil, 5).Do(t.Context(), "get", func(ctx context.Context) (*http.Request, error) {
		calls++
		return http.NewRequestWithContext(ctx, "BAD METHOD", "http://localhost", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
