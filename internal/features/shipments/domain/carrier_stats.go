package domain

import "math"

// CarrierStats is the performance summary for one carrier.
type CarrierStats struct {
	Carrier        Carrier `json:"carrier"`
	TotalShipments int     `json:"total_shipments"`
	Delivered      int     `json:"delivered"`
	// OnTimeRate is a whole percentage of delivered shipments.
	OnTimeRate int `json:"on_time_rate"`
	// AvgTransitDays is rounded to one decimal place.
	AvgTransitDays float64 `json:"avg_transit_days"`
	DelayCount     int     `json:"delay_count"`
	ExceptionCount int     `json:"exception_count"`
}

// CarrierSummary totals a set of CarrierStats.
type CarrierSummary struct {
	TotalShipments  int `json:"total_shipments"`
	TotalDelivered  int `json:"total_delivered"`
	TotalDelays     int `json:"total_delays"`
	TotalExceptions int `json:"total_exceptions"`
}

type carrierTally struct {
	total, delivered, onTime int
	transitSum, transitCount int
	delays, exceptions       int
}

// AggregateCarriers groups shipments by carrier, in first-seen order.
// An empty filter includes every carrier. Carriers with no shipments are absent.
func AggregateCarriers(shipments []Shipment, filter Carrier) []CarrierStats {
	var order []Carrier
	tallies := make(map[Carrier]*carrierTally)

	for i := range shipments {
		s := &shipments[i]
		if filter != "" && s.Carrier != filter {
			continue
		}

		t, ok := tallies[s.Carrier]
		if !ok {
			t = &carrierTally{}
			tallies[s.Carrier] = t
			order = append(order, s.Carrier)
		}

		t.total++

		switch s.Status {
		case StatusDelivered:
			t.delivered++
			if days, ok := transitDays(s.Dates); ok {
				t.transitSum += days
				t.transitCount++
			}
			// YYYY-MM-DD strings compare correctly as text.
			if s.Dates.EstimatedDelivery != "" && s.Dates.ActualDelivery != "" &&
				s.Dates.ActualDelivery <= s.Dates.EstimatedDelivery {
				t.onTime++
			}
		case StatusDelayed:
			t.delays++
		case StatusException:
			t.exceptions++
		}
	}

	out := make([]CarrierStats, 0, len(order))
	for _, c := range order {
		t := tallies[c]
		stats := CarrierStats{
			Carrier:        c,
			TotalShipments: t.total,
			Delivered:      t.delivered,
			DelayCount:     t.delays,
			ExceptionCount: t.exceptions,
		}
		if t.delivered > 0 {
			stats.OnTimeRate = int(math.Round(float64(t.onTime) / float64(t.delivered) * 100))
		}
		if t.transitCount > 0 {
			stats.AvgTransitDays = math.Round(float64(t.transitSum)/float64(t.transitCount)*10) / 10
		}
		out = append(out, stats)
	}
	return out
}

// SummarizeCarriers totals per-carrier stats.
func SummarizeCarriers(stats []CarrierStats) CarrierSummary {
	var sum CarrierSummary
	for _, s := range stats {
		sum.TotalShipments += s.TotalShipments
		sum.TotalDelivered += s.Delivered
		sum.TotalDelays += s.DelayCount
		sum.TotalExceptions += s.ExceptionCount
	}
	return sum
}

// transitDays is max(0, whole days from shipped to actual delivery).
func transitDays(d Dates) (int, bool) {
	shipped, ok := parseDate(d.Shipped)
	if !ok {
		return 0, false
	}
	delivered, ok := parseDate(d.ActualDelivery)
	if !ok {
		return 0, false
	}
	if days := floorDays(delivered.Sub(shipped)); days > 0 {
		return days, true
	}
	return 0, true
}
