package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shipment-tracker/internal/core/logger"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned without contacting the upstream while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// BreakerSettings configures a BreakerRoundTripper.
type BreakerSettings struct {
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts. 0 never clears.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
}

// DefaultBreakerSettings returns the settings used for outbound providers.
func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:                name,
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// BreakerRoundTripper counts transport errors and 5xx responses as failures.
type BreakerRoundTripper struct {
	cb      *gobreaker.CircuitBreaker
	proxied http.RoundTripper
}

// serverError carries a 5xx response through gobreaker so it can be handed back to the caller.
type serverError struct {
	resp *http.Response
}

func (e *serverError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.resp.StatusCode)
}

// NewBreakerRoundTripper wraps proxied with a circuit breaker.
func NewBreakerRoundTripper(s BreakerSettings, proxied http.RoundTripper) *BreakerRoundTripper {
	threshold := s.ConsecutiveFailures
	return &BreakerRoundTripper{
		proxied: proxied,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        s.Name,
			MaxRequests: s.MaxRequests,
			Interval:    s.Interval,
			Timeout:     s.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Component("httpclient").Warn("Circuit breaker state changed",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

// RoundTrip implements http.RoundTripper.
func (b *BreakerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		resp, err := b.proxied.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &serverError{resp: resp}
		}
		return resp, nil
	})

	var se *serverError
	switch {
	case err == nil:
		return result.(*http.Response), nil
	case errors.As(err, &se):
		return se.resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, b.cb.Name())
	default:
		return nil, err
	}
}

// State reports the current breaker state.
func (b *BreakerRoundTripper) State() gobreaker.State {
	return b.cb.State()
}
