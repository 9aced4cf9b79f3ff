package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// LifetimeVolume returns the total piece volume over the material lifetime.
// It is the denominator for amortizing fixed-lot packaging and additional
// costs; callers must treat a non-positive result as "no per-piece share".
func LifetimeVolume(m entities.Material) decimal.Decimal {
	return m.AnnualVolume.Mul(m.LifetimeYears)
}
