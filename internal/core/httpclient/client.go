package httpclient

import (
	"net/http"
	"time"

	"shipment-tracker/internal/core/logger"

	"go.uber.org/zap"
)

// redactedHeaders never reach the logs.
var redactedHeaders = []string{"X-Api-Key", "Authorization"}

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Component("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Strings("redacted_headers", presentRedacted(req.Header)),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// presentRedacted lists which sensitive headers were sent, without their values.
func presentRedacted(h http.Header) []string {
	var out []string
	for _, name := range redactedHeaders {
		if h.Get(name) != "" {
			out = append(out, name)
		}
	}
	return out
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// NewResilientClient returns an http.Client that logs every request and
// short-circuits calls to a failing upstream.
func NewResilientClient(name string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: NewBreakerRoundTripper(DefaultBreakerSettings(name), &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		}),
		Timeout: timeout,
	}
}
