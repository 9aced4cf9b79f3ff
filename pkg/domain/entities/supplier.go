package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VendorID represents a unique supplier identifier
type VendorID string

// Supplier represents a material source with its shipping origin
type Supplier struct {
	ID                 VendorID        `json:"id"`
	Name               string          `json:"name"`
	Country            string          `json:"country"`
	ZipPrefix          string          `json:"zip_prefix"` // two digits are enough for lane matching
	DeliveriesPerMonth int             `json:"deliveries_per_month"`
	DistanceKm         decimal.Decimal `json:"distance_km"` // distance to the receiving plant
}

// Plant represents the receiving location used as the transport lane destination
type Plant struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// Validate checks the supplier invariants.
func (s *Supplier) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("supplier vendor ID is required")
	}
	if s.DeliveriesPerMonth < 0 {
		return fmt.Errorf("supplier %s: deliveries per month must not be negative", s.ID)
	}
	if s.DistanceKm.IsNegative() {
		return fmt.Errorf("supplier %s: distance must not be negative", s.ID)
	}
	return nil
}
