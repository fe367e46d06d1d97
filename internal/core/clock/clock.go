// Package clock provides the time sources injected into services.
package clock

import (
	"fmt"
	"time"
)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// Real reads the wall clock in UTC.
type Real struct{}

// Now implements Clock.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now implements Clock.
func (f Fixed) Now() time.Time {
	return f.At
}

// Func adapts a function to Clock.
type Func func() time.Time

// Now implements Clock.
func (f Func) Now() time.Time {
	return f()
}

// Reference returns a Fixed clock at the RFC 3339 instant ref, or Real when ref is empty.
func Reference(ref string) (Clock, error) {
	if ref == "" {
		return Real{}, nil
	}
	at, err := time.Parse(time.RFC3339, ref)
	if err != nil {
		return nil, fmt.Errorf("parse reference time %q: %w", ref, err)
	}
	return Fixed{At: at.UTC()}, nil
}
