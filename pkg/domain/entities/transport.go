package entities

import (
	"github.com/shopspring/decimal"
)

// TransportMode represents the primary mode of transport
type TransportMode int

const (
	ModeRoad TransportMode = iota
	ModeRail
	ModeSea
)

// String method for TransportMode enum
func (m TransportMode) String() string {
	switch m {
	case ModeRoad:
		return "Road"
	case ModeRail:
		return "Rail"
	case ModeSea:
		return "Sea"
	default:
		return "Unknown"
	}
}

// Incoterm is a standardized shipping-responsibility code
type Incoterm string

// BondedRelevant reports whether the incoterm adds bonded-warehouse transport
// cost for sea shipments.
func (i Incoterm) BondedRelevant() bool {
	return i == "FCA" || i == "FOB"
}

// TransportConfig represents the transport setup for one material-supplier pair
type TransportConfig struct {
	Mode               TransportMode   `json:"mode"`
	CostPerLU          decimal.Decimal `json:"cost_per_lu"` // manual rate per logistics unit
	BondedCostPerLU    decimal.Decimal `json:"bonded_cost_per_lu"`
	StackabilityFactor decimal.Decimal `json:"stackability_factor"` // pallets stackable on top of each other
	AutoCalculation    bool            `json:"auto_calculation"`    // derive cost from the lane price table
	BondedWarehouse    bool            `json:"bonded_warehouse"`
}

// OperationsConfig represents incoterm and supply chain lead parameters
type OperationsConfig struct {
	Incoterm           Incoterm        `json:"incoterm"`
	LeadTimeDays       decimal.Decimal `json:"lead_time_days"`
	UsesSubSupplier    bool            `json:"uses_sub_supplier"`
	SubSupplierBoxDays decimal.Decimal `json:"sub_supplier_box_days"` // extra box loop days at the sub-supplier
}
