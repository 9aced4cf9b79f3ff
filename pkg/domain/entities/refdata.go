package entities

import (
	"github.com/shopspring/decimal"
)

// BoxMaterial represents the material class of a standard box
type BoxMaterial int

const (
	BoxCardboard BoxMaterial = iota
	BoxWood
	BoxPlastic
)

// String method for BoxMaterial enum
func (b BoxMaterial) String() string {
	switch b {
	case BoxCardboard:
		return "Cardboard"
	case BoxWood:
		return "Wood"
	case BoxPlastic:
		return "Plastic"
	default:
		return "Unknown"
	}
}

// StandardBox represents a standard box catalog entry
type StandardBox struct {
	Name            BoxType         `json:"name"`
	Characteristics string          `json:"characteristics"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	WeightKg        decimal.Decimal `json:"weight_kg"`
	UnitsPerLU      decimal.Decimal `json:"units_per_lu"` // boxes per logistics unit
	UnitsPerLayer   decimal.Decimal `json:"units_per_layer"`
	Material        BoxMaterial     `json:"material"`
}

// TrayItem represents a special packaging tray catalog entry
type TrayItem struct {
	Variant      SpecialPackagingVariant `json:"variant"`
	PricePerUnit decimal.Decimal         `json:"price_per_unit"`
	WeightKg     decimal.Decimal         `json:"weight_kg"`
}

// PalletAccessory represents a pallet catalog entry
type PalletAccessory struct {
	Name        PalletType      `json:"name"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	AvgWeightKg decimal.Decimal `json:"avg_weight_kg"`
}

// AdditionalPackagingItem represents an additional packaging catalog entry,
// e.g. the special pallet itself or its cover
type AdditionalPackagingItem struct {
	Name         string          `json:"name"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	WeightKg     decimal.Decimal `json:"weight_kg"`
}

// Catalog names of the additional packaging items used by the cost engine.
const (
	AdditionalItemPallet = "Pallet"
	AdditionalItemCover  = "Cover"
)

// RepackingUnit represents the billing unit of a repacking operation
type RepackingUnit int

const (
	UnitPerPart RepackingUnit = iota
	UnitPerTray
	UnitPerBag
)

// String method for RepackingUnit enum
func (u RepackingUnit) String() string {
	switch u {
	case UnitPerPart:
		return "per part"
	case UnitPerTray:
		return "per tray"
	case UnitPerBag:
		return "per bag/bulk transfer"
	default:
		return "Unknown"
	}
}

// RepackingOperation represents one row of the repacking operation price table
type RepackingOperation struct {
	WeightCategory       string          `json:"weight_category"`
	SupplierPackaging    string          `json:"supplier_packaging"`
	OperationType        string          `json:"operation_type"`
	DestinationPackaging string          `json:"destination_packaging"`
	Cost                 decimal.Decimal `json:"cost"`
	Unit                 RepackingUnit   `json:"unit"`
}

// WeightBracketPrice represents one price tier of a transport lane, keyed by
// the maximum shipment weight it covers
type WeightBracketPrice struct {
	MaxWeightKg decimal.Decimal `json:"max_weight_kg"`
	Price       decimal.Decimal `json:"price"`
}

// LaneLeadTime holds the lead times of a transport lane per service level
type LaneLeadTime struct {
	Groupage string `json:"groupage"`
	LTL      string `json:"ltl"`
	FTL      string `json:"ftl"`
}

// TransportLane represents a transport lane price table entry
type TransportLane struct {
	LaneID           string               `json:"lane_id"`
	OriginCountry    string               `json:"origin_country"`
	OriginZip        string               `json:"origin_zip"`
	OriginCity       string               `json:"origin_city"`
	DestCountry      string               `json:"dest_country"`
	DestZip          string               `json:"dest_zip"`
	DestCity         string               `json:"dest_city"`
	PricesByWeight   []WeightBracketPrice `json:"prices_by_weight"` // sorted ascending by MaxWeightKg
	FullTruckPrice   decimal.Decimal      `json:"full_truck_price"`
	FuelSurchargePct decimal.Decimal      `json:"fuel_surcharge_pct"`
	LeadTime         LaneLeadTime         `json:"lead_time"`
}

// International reports whether the lane crosses a country border.
func (l *TransportLane) International() bool {
	return l.OriginCountry != l.DestCountry
}

// PriceForWeight returns the price of the smallest bracket covering weightKg.
// Weights above the largest bracket fall into that largest bracket. The second
// return value is the bracket weight used, zero when the lane has no brackets.
func (l *TransportLane) PriceForWeight(weightKg decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if len(l.PricesByWeight) == 0 {
		return decimal.Zero, decimal.Zero
	}
	for _, bracket := range l.PricesByWeight {
		if weightKg.LessThanOrEqual(bracket.MaxWeightKg) {
			return bracket.Price, bracket.MaxWeightKg
		}
	}
	last := l.PricesByWeight[len(l.PricesByWeight)-1]
	return last.Price, last.MaxWeightKg
}
