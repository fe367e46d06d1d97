package domain

import "strings"

const (
	// DefaultSearchLimit applies when SearchFilter.Limit is unset.
	DefaultSearchLimit = 20
	// MaxSearchLimit is the largest limit accepted at the API boundary.
	MaxSearchLimit = 75
)

// SearchFilter narrows a shipment search. Zero values disable a predicate.
type SearchFilter struct {
	Status  Status
	Carrier Carrier
	// CustomerEmail matches case-insensitively.
	CustomerEmail string
	// DateFrom and DateTo bound dates.ordered inclusively (YYYY-MM-DD).
	DateFrom          string
	DateTo            string
	Gift              *bool
	SignatureRequired *bool
	Limit             int
}

// Search scans shipments in order and stops once Limit matches are found.
func Search(shipments []Shipment, f SearchFilter) []Shipment {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	email := strings.ToLower(f.CustomerEmail)

	out := make([]Shipment, 0)
	for i := range shipments {
		s := &shipments[i]

		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Carrier != "" && s.Carrier != f.Carrier {
			continue
		}
		if email != "" && strings.ToLower(s.Customer.Email) != email {
			continue
		}
		if f.DateFrom != "" && s.Dates.Ordered < f.DateFrom {
			continue
		}
		if f.DateTo != "" && s.Dates.Ordered > f.DateTo {
			continue
		}
		if f.Gift != nil && s.Flags.Gift != *f.Gift {
			continue
		}
		if f.SignatureRequired != nil && s.Flags.SignatureRequired != *f.SignatureRequired {
			continue
		}

		out = append(out, *s)
		if len(out) >= limit {
			break
		}
	}
	return out
}
