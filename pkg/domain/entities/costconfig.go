package entities

import (
	"github.com/shopspring/decimal"
)

// WarehouseConfig represents warehouse cost parameters
type WarehouseConfig struct {
	CostPerLocationMonthly decimal.Decimal `json:"cost_per_location_monthly"`
}

// CO2Config represents carbon cost parameters
type CO2Config struct {
	CostPerTonCO2    decimal.Decimal `json:"cost_per_ton_co2"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"` // mode/route dependent
}

// CustomsConfig represents duty and tariff parameters
type CustomsConfig struct {
	DutyRatePercent   decimal.Decimal `json:"duty_rate_percent"`
	TariffRatePercent decimal.Decimal `json:"tariff_rate_percent"`
	UsePreference     bool            `json:"use_preference"` // preference usage zeroes the customs cost
}

// RepackingConfig selects a row of the repacking operation price table
type RepackingConfig struct {
	WeightCategory       string `json:"weight_category"`
	SupplierPackaging    string `json:"supplier_packaging"`
	DestinationPackaging string `json:"destination_packaging"`
}

// AdditionalCost represents a flat extra cost amortized over lifetime volume
type AdditionalCost struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
