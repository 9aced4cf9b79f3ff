package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// additionalCostPerPiece amortizes the flat extra costs over the lifetime
// volume.
func additionalCostPerPiece(m entities.Material, costs []entities.AdditionalCost, col *Collector) decimal.Decimal {
	if len(costs) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(c.Value)
	}
	return safeDiv(total, LifetimeVolume(m), col, "additional", "lifetime volume")
}
