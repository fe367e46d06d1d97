package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrShipmentNotFound is returned when no shipment matches an identifier.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidTransition is returned when a status is not reachable from the current one.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCarrier is returned for an unknown carrier value.
	ErrInvalidCarrier = errors.New("invalid carrier")
	// ErrInvalidSeverity is returned for an unknown severity value.
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrDuplicateIdentifier is returned when a snapshot reuses an identifier.
	ErrDuplicateIdentifier = errors.New("duplicate shipment identifier")
	// ErrIdentifierChanged is returned when a mutation touches an immutable identifier.
	ErrIdentifierChanged = errors.New("shipment identifiers are immutable")
)

// InvalidTransitionError carries what the caller needs to pick a valid status.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (allowed: %v)", ErrInvalidTransition, e.Current, e.Requested, e.Allowed)
}

// Unwrap lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
