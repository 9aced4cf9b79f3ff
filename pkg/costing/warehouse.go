package costing

import (
	"github.com/shopspring/decimal"
)

var (
	five          = decimal.NewFromInt(5)
	monthsPerYear = decimal.NewFromInt(12)
)

// WarehouseBreakdown holds the storage figures of one pair
type WarehouseBreakdown struct {
	InventoryDays         decimal.Decimal
	SafetyStockDays       decimal.Decimal
	StorageLocationsLocal decimal.Decimal
	StorageLocationsTotal decimal.Decimal
	CostPerPiece          decimal.Decimal
}

// warehouseCost derives the storage location count from the logistics-unit
// coverage and allocates the monthly location cost per piece.
func (c *Calculator) warehouseCost(in Input, pkg PackagingBreakdown, col *Collector) WarehouseBreakdown {
	var b WarehouseBreakdown

	fill := pkg.EffectiveFillPerLU(in.Packaging.SpecialPackagingEnabled())
	fill = floorAtOne(fill, col, "warehouse", "fill quantity per logistics unit")

	daily := in.Material.DailyDemand
	b.InventoryDays = safeDiv(fill, daily, col, "warehouse", "daily demand")
	b.SafetyStockDays = in.Operations.LeadTimeDays.Mul(daily).Div(fill).Ceil()

	if b.InventoryDays.IsPositive() {
		b.StorageLocationsLocal = five.Div(b.InventoryDays).Ceil()
	} else {
		// Without coverage data fall back to the default local allocation.
		b.StorageLocationsLocal = five
	}
	b.StorageLocationsTotal = b.StorageLocationsLocal.Add(b.SafetyStockDays)

	annualCost := monthsPerYear.Mul(b.StorageLocationsTotal).Mul(in.Warehouse.CostPerLocationMonthly)
	b.CostPerPiece = roundCeilPerPiece(safeDiv(annualCost, in.Material.AnnualVolume, col, "warehouse", "annual volume"))
	return b
}
