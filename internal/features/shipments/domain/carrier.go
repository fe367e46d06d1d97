package domain

import "fmt"

// Carrier is one of the delivery companies shipments are handed to.
type Carrier string

const (
	CarrierRoyalMail  Carrier = "Royal Mail"
	CarrierDPD        Carrier = "DPD"
	CarrierHermesEvri Carrier = "Hermes/Evri"
	CarrierDHL        Carrier = "DHL"
	CarrierFedEx      Carrier = "FedEx"
)

var carriers = []Carrier{
	CarrierRoyalMail,
	CarrierDPD,
	CarrierHermesEvri,
	CarrierDHL,
	CarrierFedEx,
}

// CarrierNames returns the supported carriers as strings.
func CarrierNames() []string {
	out := make([]string, len(carriers))
	for i, c := range carriers {
		out[i] = string(c)
	}
	return out
}

// ParseCarrier converts a raw value into a Carrier. Matching is exact.
func ParseCarrier(raw string) (Carrier, error) {
	for _, c := range carriers {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCarrier, raw)
}
