package domain

import "fmt"

// Severity ranks how at-risk a shipment is. The zero value means unassessed.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityOrder is ascending.
var severityOrder = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// SeverityNames returns the tiers in ascending order.
func SeverityNames() []string {
	out := make([]string, len(severityOrder))
	for i, s := range severityOrder {
		out[i] = string(s)
	}
	return out
}

// ParseSeverity converts a raw value into a Severity.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(raw)
	if s.Rank() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, raw)
	}
	return s, nil
}

// Rank returns 0 for low up to 3 for critical, and -1 for an unknown or unset tier.
func (s Severity) Rank() int {
	for i, v := range severityOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// Escalate returns the next tier up, clamped at critical.
// An unset severity stays unset.
func (s Severity) Escalate() Severity {
	r := s.Rank()
	if r < 0 {
		return s
	}
	if r+1 >= len(severityOrder) {
		return SeverityCritical
	}
	return severityOrder[r+1]
}

// AtLeast reports whether s ranks at or above threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() >= 0 && s.Rank() >= threshold.Rank()
}

// SeverityCounts tallies classified shipments per tier.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// CountSeverities tallies results by tier.
func CountSeverities(results []DelayedShipment) SeverityCounts {
	var c SeverityCounts
	for _, r := range results {
		switch r.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityMedium:
			c.Medium++
		case SeverityLow:
			c.Low++
		}
	}
	return c
}

// Map returns the counts keyed by tier name.
func (c SeverityCounts) Map() map[string]int {
	return map[string]int{
		string(SeverityCritical): c.Critical,
		string(SeverityHigh):     c.High,
		string(SeverityMedium):   c.Medium,
		string(SeverityLow):      c.Low,
	}
}
