package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialID represents a unique material identifier
type MaterialID string

// Material represents a purchased part with its demand and price properties
type Material struct {
	ID            MaterialID      `json:"id"`
	Description   string          `json:"description"`
	WeightKg      decimal.Decimal `json:"weight_kg"`      // weight per piece in kg
	AnnualVolume  decimal.Decimal `json:"annual_volume"`  // pieces per year
	DailyDemand   decimal.Decimal `json:"daily_demand"`   // pieces per working day
	LifetimeYears decimal.Decimal `json:"lifetime_years"`
	PiecePrice    decimal.Decimal `json:"piece_price"`
}

// Validate checks the material invariants: weight and volumes must not be negative.
func (m *Material) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("material ID is required")
	}
	if m.WeightKg.IsNegative() {
		return fmt.Errorf("material %s: weight per piece must not be negative", m.ID)
	}
	if m.AnnualVolume.IsNegative() {
		return fmt.Errorf("material %s: annual volume must not be negative", m.ID)
	}
	if m.DailyDemand.IsNegative() {
		return fmt.Errorf("material %s: daily demand must not be negative", m.ID)
	}
	if m.LifetimeYears.IsNegative() {
		return fmt.Errorf("material %s: lifetime must not be negative", m.ID)
	}
	return nil
}
