package httpclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shipment-tracker/internal/core/logger"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient(1 * time.Second)
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("X-API-KEY", "secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient(1 * time.Second)
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

func TestPresentRedacted(t *testing.T) {
	h := http.Header{}
	assert.Empty(t, presentRedacted(h))

	h.Set("X-API-KEY", "k")
	assert.Equal(t, []string{"X-Api-Key"}, presentRedacted(h))
}

type stubTransport struct {
	calls  int32
	status int
	err    error
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{StatusCode: s.status, Body: http.NoBody, Request: req}, nil
}

func testSettings() BreakerSettings {
	s := DefaultBreakerSettings("test")
	s.ConsecutiveFailures = 2
	s.Timeout = time.Hour
	return s
}

func TestBreakerRoundTripper_PassesThroughSuccess(t *testing.T) {
	stub := &stubTransport{status: http.StatusOK}
	rt := NewBreakerRoundTripper(testSettings(), stub)

	for i := 0; i < 5; i++ {
		resp, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/search", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, gobreaker.StateClosed, rt.State())
}

func TestBreakerRoundTripper_ServerErrorsTrip(t *testing.T) {
	stub := &stubTransport{status: http.StatusBadGateway}
	rt := NewBreakerRoundTripper(testSettings(), stub)

	// 5xx responses are still returned to the caller.
	for i := 0; i < 2; i++ {
		resp, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/search", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	}
	assert.Equal(t, gobreaker.StateOpen, rt.State())

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/search", nil))
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&stub.calls))
}

func TestBreakerRoundTripper_ClientErrorsDoNotTrip(t *testing.T) {
	stub := &stubTransport{status: http.StatusNotFound}
	rt := NewBreakerRoundTripper(testSettings(), stub)

	for i := 0; i < 4; i++ {
		resp, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/x", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	assert.Equal(t, gobreaker.StateClosed, rt.State())
}

func TestBreakerRoundTripper_TransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	stub := &stubTransport{err: boom}
	rt := NewBreakerRoundTripper(testSettings(), stub)

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/x", nil))
	assert.ErrorIs(t, err, boom)
	_, err = rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/x", nil))
	assert.ErrorIs(t, err, boom)

	_, err = rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://upstream/x", nil))
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestNewResilientClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer ts.Close()

	client := NewResilientClient("teapot", time.Second)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
