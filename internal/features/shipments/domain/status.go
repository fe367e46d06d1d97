package domain

import "fmt"

// Status is a shipment's position in the fulfilment lifecycle.
type Status string

const (
	StatusOrdered        Status = "ordered"
	StatusPicked         Status = "picked"
	StatusDispatched     Status = "dispatched"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusDelayed        Status = "delayed"
	StatusException      Status = "exception"
	StatusReturned       Status = "returned"
)

// statuses lists every status in lifecycle order.
var statuses = []Status{
	StatusOrdered,
	StatusPicked,
	StatusDispatched,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusDelayed,
	StatusException,
	StatusReturned,
}

// transitions is the adjacency table of the status machine. It is never
// mutated; accessors hand out copies.
var transitions = map[Status][]Status{
	StatusOrdered:        {StatusPicked, StatusDispatched},
	StatusPicked:         {StatusDispatched},
	StatusDispatched:     {StatusInTransit},
	StatusInTransit:      {StatusOutForDelivery, StatusDelivered, StatusDelayed, StatusException, StatusReturned},
	StatusOutForDelivery: {StatusDelivered, StatusException, StatusReturned},
	StatusDelivered:      {StatusReturned},
	StatusDelayed:        {StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusException, StatusReturned},
	StatusException:      {StatusInTransit, StatusDelayed, StatusReturned},
	StatusReturned:       {},
}

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// StatusNames returns every known status as a string, for validators and docs.
func StatusNames() []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// ParseStatus converts a raw value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The result is never nil, so it serialises as an empty list for terminal states.
func (s Status) AllowedTransitions() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether to is directly reachable from s.
func (s Status) CanTransitionTo(to Status) bool {
	for _, n := range transitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
