package entities

import (
	"github.com/shopspring/decimal"
)

// BoxType is a key into the standard box catalog
type BoxType string

// PalletType is a key into the pallet accessory catalog
type PalletType string

// SpecialPackagingVariant represents the special packaging form used instead of
// the standard box/pallet combination
type SpecialPackagingVariant int

const (
	SPNone SpecialPackagingVariant = iota
	SPInlayTray
	SPInlayTrayPalletSize
	SPStandaloneTray
)

// String method for SpecialPackagingVariant enum
func (v SpecialPackagingVariant) String() string {
	switch v {
	case SPNone:
		return "None"
	case SPInlayTray:
		return "InlayTray"
	case SPInlayTrayPalletSize:
		return "InlayTrayPalletSize"
	case SPStandaloneTray:
		return "StandaloneTray"
	default:
		return "Unknown"
	}
}

// LoopStages holds the named packaging loop durations in days. A fixed struct
// replaces the free-form stage-name map so producer and consumer cannot drift.
type LoopStages struct {
	GoodsReceiptDays  decimal.Decimal `json:"goods_receipt_days"`
	StockRawDays      decimal.Decimal `json:"stock_raw_days"`
	ProductionDays    decimal.Decimal `json:"production_days"`
	StockFinishedDays decimal.Decimal `json:"stock_finished_days"`
	DispatchDays      decimal.Decimal `json:"dispatch_days"`
	TransitDays       decimal.Decimal `json:"transit_days"`
	BufferDays        decimal.Decimal `json:"buffer_days"`
}

// TotalDays returns the sum of all loop stage durations.
func (l LoopStages) TotalDays() decimal.Decimal {
	return l.GoodsReceiptDays.
		Add(l.StockRawDays).
		Add(l.ProductionDays).
		Add(l.StockFinishedDays).
		Add(l.DispatchDays).
		Add(l.TransitDays).
		Add(l.BufferDays)
}

// PackagingConfig represents the packaging setup for one material-supplier pair
type PackagingConfig struct {
	BoxType               BoxType                 `json:"box_type"`
	FillQtyPerBox         decimal.Decimal         `json:"fill_qty_per_box"` // pieces per box
	PalletType            PalletType              `json:"pallet_type"`
	SpecialPackaging      SpecialPackagingVariant `json:"special_packaging"`
	AddSpecialPallet      bool                    `json:"add_special_pallet"` // an additional special pallet/cover is required
	FillQtyPerTray        decimal.Decimal         `json:"fill_qty_per_tray"`
	TraysPerSpecialPallet decimal.Decimal         `json:"trays_per_special_pallet"`
	SpecialPalletsPerLU   decimal.Decimal         `json:"special_pallets_per_lu"`
	OverseaFillQty        decimal.Decimal         `json:"oversea_fill_qty"` // pieces per oversea logistics unit
	ToolingCost           decimal.Decimal         `json:"tooling_cost"`
	ExtraUnitPrice        decimal.Decimal         `json:"extra_unit_price"` // additional packaging price per box
	Loop                  LoopStages              `json:"loop"`
	ScrapCardboard        decimal.Decimal         `json:"scrap_cardboard"` // annual cardboard scrap allowance
}

// SpecialPackagingEnabled reports whether a special packaging variant is configured.
func (p *PackagingConfig) SpecialPackagingEnabled() bool {
	return p.SpecialPackaging != SPNone
}
