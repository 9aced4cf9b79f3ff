package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// repackingCostPerPiece resolves the repacking operation cost from the
// weight-category price table. Only operations billed per part contribute;
// other billing units have no per-piece conversion and degrade to zero.
func (c *Calculator) repackingCostPerPiece(cfg entities.RepackingConfig, col *Collector) decimal.Decimal {
	if cfg.WeightCategory == "" {
		return decimal.Zero
	}

	op, err := c.repacking.OperationCost(cfg.WeightCategory, cfg.SupplierPackaging, cfg.DestinationPackaging)
	if err != nil {
		col.Add(LookupMiss, "repacking", "no operation for category %q, %q -> %q: %v",
			cfg.WeightCategory, cfg.SupplierPackaging, cfg.DestinationPackaging, err)
		return decimal.Zero
	}

	if op.Unit != entities.UnitPerPart {
		col.Add(LookupMiss, "repacking", "unsupported billing unit %q for category %q", op.Unit, cfg.WeightCategory)
		return decimal.Zero
	}
	return op.Cost
}
