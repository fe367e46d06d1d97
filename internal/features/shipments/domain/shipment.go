package domain

import (
	"time"
)

// DateLayout is the format of every field in Dates.
const DateLayout = "2006-01-02"

// Shipment is one order's physical fulfilment record.
type Shipment struct {
	// ShipmentID is the primary identifier (SHP-###).
	ShipmentID string `json:"shipment_id"`
	// OrderID is the storefront order (ORD-#####).
	OrderID string `json:"order_id"`
	// TrackingNumber is the carrier-issued reference.
	TrackingNumber  string          `json:"tracking_number"`
	Status          Status          `json:"status"`
	Carrier         Carrier         `json:"carrier"`
	Customer        Customer        `json:"customer"`
	ShippingAddress Address         `json:"shipping_address"`
	DeliveryAddress Address         `json:"delivery_address"`
	Items           []Item          `json:"items"`
	Dates           Dates           `json:"dates"`
	TrackingEvents  []TrackingEvent `json:"tracking_events"`
	Flags           Flags           `json:"flags"`
	// DelayReason is free text set by the carrier or ops.
	DelayReason string `json:"delay_reason,omitempty"`
}

// Customer is the recipient's contact details.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address is a postal address.
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Item is one order line.
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Dates holds the lifecycle dates as YYYY-MM-DD strings. Only Ordered is required.
type Dates struct {
	Ordered           string `json:"ordered"`
	Shipped           string `json:"shipped,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	ActualDelivery    string `json:"actual_delivery,omitempty"`
}

// TrackingEvent is a timestamped observation. Events are only ever appended.
type TrackingEvent struct {
	// Timestamp is RFC 3339.
	Timestamp   string `json:"timestamp"`
	Status      Status `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Flags are handling hints set at order time.
type Flags struct {
	Gift              bool `json:"gift"`
	SignatureRequired bool `json:"signature_required"`
	Insurance         bool `json:"insurance"`
}

// Clone returns a deep copy.
func (s Shipment) Clone() Shipment {
	out := s
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		copy(out.Items, s.Items)
	}
	if s.TrackingEvents != nil {
		out.TrackingEvents = make([]TrackingEvent, len(s.TrackingEvents))
		copy(out.TrackingEvents, s.TrackingEvents)
	}
	return out
}

// LastEvent returns the most recent tracking event.
func (s Shipment) LastEvent() (TrackingEvent, bool) {
	if len(s.TrackingEvents) == 0 {
		return TrackingEvent{}, false
	}
	return s.TrackingEvents[len(s.TrackingEvents)-1], true
}

// ApplyTransition moves the shipment to status to at the given instant and
// returns the appended event. location defaults to the delivery city and
// notes to a generated description. The shipment is left untouched on error.
func (s *Shipment) ApplyTransition(to Status, at time.Time, location, notes string) (TrackingEvent, error) {
	if !s.Status.CanTransitionTo(to) {
		return TrackingEvent{}, &InvalidTransitionError{
			Current:   s.Status,
			Requested: to,
			Allowed:   s.Status.AllowedTransitions(),
		}
	}

	if location == "" {
		location = s.DeliveryAddress.City
	}
	if notes == "" {
		notes = "Status updated to " + string(to)
	}

	at = at.UTC()
	event := TrackingEvent{
		Timestamp:   at.Format(time.RFC3339),
		Status:      to,
		Location:    location,
		Description: notes,
	}

	s.Status = to
	s.TrackingEvents = append(s.TrackingEvents, event)

	today := at.Format(DateLayout)
	switch {
	case to == StatusDelivered:
		s.Dates.ActualDelivery = today
	case to == StatusDispatched && s.Dates.Shipped == "":
		s.Dates.Shipped = today
	}

	return event, nil
}

// parseDate reads a YYYY-MM-DD value as UTC midnight.
func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseTimestamp reads an RFC 3339 event timestamp.
func parseTimestamp(v string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
