package costing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// Input holds the immutable configuration records for one material-supplier
// pair. The configuration layer assembles it; the calculator never mutates it.
type Input struct {
	Material    entities.Material
	Supplier    entities.Supplier
	Destination entities.Plant
	Packaging   entities.PackagingConfig
	Transport   entities.TransportConfig
	Operations  entities.OperationsConfig
	Warehouse   entities.WarehouseConfig
	CO2         entities.CO2Config
	Customs     entities.CustomsConfig
	Repacking   entities.RepackingConfig
	Additional  []entities.AdditionalCost
}

// Result is the flat, fully itemized cost record for one material-supplier
// pair. It is the sole interface consumed by report exporters and result
// tables.
type Result struct {
	MaterialID   entities.MaterialID `json:"material_id"`
	MaterialDesc string              `json:"material_desc"`
	SupplierID   entities.VendorID   `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`

	LifetimeVolume decimal.Decimal `json:"lifetime_volume"`

	PackagingCostPlant    decimal.Decimal `json:"packaging_cost_plant"`
	PackagingCostCoC      decimal.Decimal `json:"packaging_cost_coc"`
	PackagingCostTotal    decimal.Decimal `json:"packaging_cost_total"`
	PackagingCostPerPiece decimal.Decimal `json:"packaging_cost_per_piece"`

	RepackingCostPerPiece decimal.Decimal `json:"repacking_cost_per_piece"`

	DutyRatePercent     decimal.Decimal `json:"duty_rate_percent"`
	CustomsCostPerPiece decimal.Decimal `json:"customs_cost_per_piece"`

	TransportCostPerLU    decimal.Decimal `json:"transport_cost_per_lu"`
	TransportCostPerPiece decimal.Decimal `json:"transport_cost_per_piece"`

	CO2EmissionKg   decimal.Decimal `json:"co2_emission_kg"`
	CO2CostPerPiece decimal.Decimal `json:"co2_cost_per_piece"`

	InventoryDays         decimal.Decimal `json:"inventory_days"`
	SafetyStockDays       decimal.Decimal `json:"safety_stock_days"`
	StorageLocationsTotal decimal.Decimal `json:"storage_locations_total"`
	WarehouseCostPerPiece decimal.Decimal `json:"warehouse_cost_per_piece"`

	AdditionalCostPerPiece decimal.Decimal `json:"additional_cost_per_piece"`

	TotalCostPerPiece decimal.Decimal `json:"total_cost_per_piece"`
	TotalAnnualCost   decimal.Decimal `json:"total_annual_cost"`

	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
	CalculatedAt time.Time    `json:"calculated_at"`
}

// Calculator computes the total logistics cost per piece for one
// material-supplier pair. It is stateless per call: every invocation is a
// pure function of its input and the injected read-only reference tables, so
// a single Calculator may serve concurrent batch workers.
type Calculator struct {
	catalog   repositories.PackagingCatalog
	repacking repositories.RepackingTable
	lanes     repositories.TransportLaneTable
}

// NewCalculator creates a calculator over the given reference lookup services
func NewCalculator(
	catalog repositories.PackagingCatalog,
	repacking repositories.RepackingTable,
	lanes repositories.TransportLaneTable,
) *Calculator {
	return &Calculator{
		catalog:   catalog,
		repacking: repacking,
		lanes:     lanes,
	}
}

// Calculate runs every cost component in dependency order and assembles the
// itemized result. No component failure aborts the pair: each failure
// degrades to a zero contribution and a diagnostic on the result.
func (c *Calculator) Calculate(in Input) *Result {
	col := NewCollector()

	result := &Result{
		MaterialID:      in.Material.ID,
		MaterialDesc:    in.Material.Description,
		SupplierID:      in.Supplier.ID,
		SupplierName:    in.Supplier.Name,
		DutyRatePercent: in.Customs.DutyRatePercent,
		CalculatedAt:    time.Now(),
	}

	result.LifetimeVolume = LifetimeVolume(in.Material)

	refs := c.resolveRefs(in.Packaging, col)

	pkg := c.guardedPackaging(in, refs, col)
	result.PackagingCostPlant = pkg.PlantCost
	result.PackagingCostCoC = pkg.CoCCost
	result.PackagingCostTotal = pkg.TotalCost
	result.PackagingCostPerPiece = pkg.CostPerPiece

	result.RepackingCostPerPiece = c.guarded("repacking", col, func() decimal.Decimal {
		return c.repackingCostPerPiece(in.Repacking, col)
	})

	transport := c.guardedTransport(in, refs, pkg, col)
	result.TransportCostPerLU = transport.CostPerLU
	result.TransportCostPerPiece = transport.CostPerPiece

	result.CustomsCostPerPiece = c.guarded("customs", col, func() decimal.Decimal {
		return c.customsCostPerPiece(in.Material, in.Customs, transport.CostPerPiece)
	})

	co2 := c.guardedCO2(in, refs, pkg, col)
	result.CO2EmissionKg = co2.EmissionKg
	result.CO2CostPerPiece = co2.CostPerPiece

	warehouse := c.guardedWarehouse(in, pkg, col)
	result.InventoryDays = warehouse.InventoryDays
	result.SafetyStockDays = warehouse.SafetyStockDays
	result.StorageLocationsTotal = warehouse.StorageLocationsTotal
	result.WarehouseCostPerPiece = warehouse.CostPerPiece

	result.AdditionalCostPerPiece = c.guarded("additional", col, func() decimal.Decimal {
		return additionalCostPerPiece(in.Material, in.Additional, col)
	})

	result.TotalCostPerPiece = result.PackagingCostPerPiece.
		Add(result.RepackingCostPerPiece).
		Add(result.CustomsCostPerPiece).
		Add(result.TransportCostPerPiece).
		Add(result.WarehouseCostPerPiece).
		Add(result.AdditionalCostPerPiece).
		Add(result.CO2CostPerPiece)
	result.TotalAnnualCost = result.TotalCostPerPiece.Mul(in.Material.AnnualVolume)

	result.Diagnostics = col.Diagnostics()
	return result
}

// guarded runs a component, converting a panic into a ComputationError
// diagnostic and a zero contribution.
func (c *Calculator) guarded(component string, col *Collector, fn func() decimal.Decimal) (v decimal.Decimal) {
	defer func() {
		if r := recover(); r != nil {
			col.Add(ComputationError, component, "unexpected failure: %v", r)
			v = decimal.Zero
		}
	}()
	return fn()
}

func (c *Calculator) guardedPackaging(in Input, refs pairRefs, col *Collector) (b PackagingBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			col.Add(ComputationError, "packaging", "unexpected failure: %v", r)
			b = PackagingBreakdown{}
		}
	}()
	return c.packagingCost(in, refs, col)
}

func (c *Calculator) guardedTransport(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) (b TransportBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			col.Add(ComputationError, "transport", "unexpected failure: %v", r)
			b = TransportBreakdown{}
		}
	}()
	return c.transportCost(in, refs, pkg, col)
}

func (c *Calculator) guardedCO2(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) (b CO2Breakdown) {
	defer func() {
		if r := recover(); r != nil {
			col.Add(ComputationError, "co2", "unexpected failure: %v", r)
			b = CO2Breakdown{}
		}
	}()
	return c.co2Cost(in, refs, pkg, col)
}

func (c *Calculator) guardedWarehouse(in Input, pkg PackagingBreakdown, col *Collector) (b WarehouseBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			col.Add(ComputationError, "warehouse", "unexpected failure: %v", r)
			b = WarehouseBreakdown{}
		}
	}()
	return c.warehouseCost(in, pkg, col)
}
