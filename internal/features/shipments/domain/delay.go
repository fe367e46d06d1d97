package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	defaultDelayedReason   = "Shipment marked as delayed"
	defaultExceptionReason = "Exception raised on shipment"
	giftReasonPrefix       = "[GIFT ORDER] "

	staleHighHours   = 72
	staleMediumHours = 48
	// missedETAHighDays is the overdue count above which a missed ETA is high.
	missedETAHighDays = 2
	// delayedHighDays is the overdue count above which an explicit delay is high.
	delayedHighDays = 3
)

// DelayedShipment is one classified shipment.
type DelayedShipment struct {
	Shipment    Shipment `json:"shipment"`
	Severity    Severity `json:"severity"`
	Reason      string   `json:"reason"`
	DaysOverdue int      `json:"days_overdue"`
}

// ClassifyOptions selects which shipments Classify reports.
type ClassifyOptions struct {
	// IncludeAtRisk enables the stale-tracking and missed-ETA rules.
	IncludeAtRisk bool
	// Threshold is the minimum reported severity. Empty means low.
	Threshold Severity
}

// Assessment is the running result of the rule pipeline for one shipment.
// An empty Severity means no rule has fired yet.
type Assessment struct {
	Severity    Severity
	Reason      string
	DaysOverdue int
}

// delayRule inspects a shipment and returns the assessment with any unset
// parts filled in. Rules never overwrite a severity set by an earlier rule.
type delayRule func(s *Shipment, now time.Time, opts ClassifyOptions, a Assessment) Assessment

// delayRules run in order.
var delayRules = []delayRule{
	explicitDelay,
	exceptionRaised,
	staleTracking,
	missedETA,
}

// Classify runs the rule pipeline over shipments as of now and returns the
// flagged ones, most severe first. Ties keep input order.
func Classify(shipments []Shipment, now time.Time, opts ClassifyOptions) []DelayedShipment {
	threshold := opts.Threshold
	if threshold == "" {
		threshold = SeverityLow
	}

	results := make([]DelayedShipment, 0)
	for i := range shipments {
		s := &shipments[i]

		a, ok := Assess(s, now, opts)
		if !ok || !a.Severity.AtLeast(threshold) {
			continue
		}

		results = append(results, DelayedShipment{
			Shipment:    *s,
			Severity:    a.Severity,
			Reason:      a.Reason,
			DaysOverdue: a.DaysOverdue,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Severity.Rank() > results[j].Severity.Rank()
	})

	return results
}

// Assess runs every rule plus gift escalation for a single shipment.
// It reports false when no rule assigned a severity.
func Assess(s *Shipment, now time.Time, opts ClassifyOptions) (Assessment, bool) {
	var a Assessment
	for _, rule := range delayRules {
		a = rule(s, now, opts, a)
	}
	if a.Severity == "" {
		return a, false
	}
	return escalateGift(s, a), true
}

func explicitDelay(s *Shipment, now time.Time, _ ClassifyOptions, a Assessment) Assessment {
	if s.Status != StatusDelayed || a.Severity != "" {
		return a
	}

	a.DaysOverdue = daysPastETA(s, now)
	a.Reason = orDefault(s.DelayReason, defaultDelayedReason)
	switch {
	case s.Flags.Gift:
		a.Severity = SeverityCritical
	case a.DaysOverdue > delayedHighDays:
		a.Severity = SeverityHigh
	default:
		a.Severity = SeverityMedium
	}
	return a
}

func exceptionRaised(s *Shipment, now time.Time, _ ClassifyOptions, a Assessment) Assessment {
	if s.Status != StatusException || a.Severity != "" {
		return a
	}

	a.DaysOverdue = daysPastETA(s, now)
	a.Reason = orDefault(s.DelayReason, defaultExceptionReason)
	a.Severity = SeverityHigh

	reason := strings.ToLower(s.DelayReason)
	if strings.Contains(reason, "loss") || strings.Contains(reason, "lost") {
		a.Severity = SeverityCritical
	}
	return a
}

func staleTracking(s *Shipment, now time.Time, opts ClassifyOptions, a Assessment) Assessment {
	if !opts.IncludeAtRisk || s.Status != StatusInTransit {
		return a
	}
	last, ok := s.LastEvent()
	if !ok {
		return a
	}
	at, ok := parseTimestamp(last.Timestamp)
	if !ok {
		return a
	}

	hours := now.Sub(at).Hours()
	var severity Severity
	var reason string
	switch {
	case hours > staleHighHours:
		severity = SeverityHigh
		reason = fmt.Sprintf("No tracking update for %d hours - possible stale tracking", int(math.Floor(hours)))
	case hours > staleMediumHours:
		severity = SeverityMedium
		reason = fmt.Sprintf("No tracking update for %d hours", int(math.Floor(hours)))
	default:
		return a
	}

	if a.Severity == "" {
		a.Severity = severity
	}
	if a.Reason == "" {
		a.Reason = reason
	}
	a.DaysOverdue = int(math.Floor(hours / 24))
	return a
}

func missedETA(s *Shipment, now time.Time, opts ClassifyOptions, a Assessment) Assessment {
	if !opts.IncludeAtRisk || s.Status != StatusInTransit || a.Severity != "" {
		return a
	}
	eta, ok := parseDate(s.Dates.EstimatedDelivery)
	if !ok || !now.After(eta) {
		return a
	}

	a.DaysOverdue = floorDays(now.Sub(eta))
	if a.DaysOverdue > missedETAHighDays {
		a.Severity = SeverityHigh
	} else {
		a.Severity = SeverityMedium
	}
	a.Reason = fmt.Sprintf("Estimated delivery date (%s) has passed by %d day(s)", s.Dates.EstimatedDelivery, a.DaysOverdue)
	return a
}

// escalateGift lifts gift orders one tier and marks the reason.
func escalateGift(s *Shipment, a Assessment) Assessment {
	if !s.Flags.Gift || a.Severity == SeverityCritical {
		return a
	}
	a.Severity = a.Severity.Escalate()
	a.Reason = giftReasonPrefix + a.Reason
	return a
}

// daysPastETA is max(0, whole days since the estimate), or 0 without a usable estimate.
func daysPastETA(s *Shipment, now time.Time) int {
	eta, ok := parseDate(s.Dates.EstimatedDelivery)
	if !ok {
		return 0
	}
	if d := floorDays(now.Sub(eta)); d > 0 {
		return d
	}
	return 0
}

func floorDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
