package costing

import (
	"testing"
)

func TestWarehouseCost(t *testing.T) {
	calc := newTestCalculator()
	in := baseInput()

	col := NewCollector()
	pkg := calc.packagingCost(in, calc.resolveRefs(in.Packaging, col), col)
	b := calc.warehouseCost(in, pkg, col)

	// One LU covers 1000/480 = 2.08 days of demand, a 10 day lead needs 5
	// safety days, 5/2.08 rounds up to 3 local locations.
	if !b.InventoryDays.Equal(dec("1000").Div(dec("480"))) {
		t.Errorf("expected %s inventory days, got %s", dec("1000").Div(dec("480")), b.InventoryDays)
	}
	if !b.SafetyStockDays.Equal(dec("5")) {
		t.Errorf("expected 5 safety days, got %s", b.SafetyStockDays)
	}
	if !b.StorageLocationsTotal.Equal(dec("8")) {
		t.Errorf("expected 8 storage locations, got %s", b.StorageLocationsTotal)
	}
	// 12 months * 8 locations * 10 over 120000 pieces.
	if !b.CostPerPiece.Equal(dec("0.008")) {
		t.Errorf("expected 0.008 per piece, got %s", b.CostPerPiece)
	}
}

func TestWarehouseCostZeroDailyDemand(t *testing.T) {
	calc := newTestCalculator()
	in := baseInput()
	in.Material.DailyDemand = dec("0")

	col := NewCollector()
	pkg := calc.packagingCost(in, calc.resolveRefs(in.Packaging, col), col)
	b := calc.warehouseCost(in, pkg, col)

	if !b.InventoryDays.IsZero() {
		t.Errorf("expected zero inventory days, got %s", b.InventoryDays)
	}
	// Without coverage data the default local allocation of 5 applies.
	if !b.StorageLocationsLocal.Equal(dec("5")) {
		t.Errorf("expected fallback of 5 local locations, got %s", b.StorageLocationsLocal)
	}
	if !col.HasKind(DivisionGuard) {
		t.Error("expected a DivisionGuard diagnostic")
	}
}
