package costing

import (
	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)
	ten = decimal.NewFromInt(10)
)

// floorAtOne substitutes one for a non-positive denominator and records a
// DivisionGuard diagnostic. Fill quantities and unit counts go through here so
// the zero-guard policy stays in one auditable place.
func floorAtOne(d decimal.Decimal, col *Collector, component, field string) decimal.Decimal {
	if d.Sign() <= 0 {
		col.Add(DivisionGuard, component, "%s is %s, floored at 1 before division", field, d)
		return one
	}
	return d
}

// safeDiv divides num by den, returning zero with a DivisionGuard diagnostic
// when the denominator is zero or negative. Volume denominators use this
// policy: a product without volume carries no per-piece cost.
func safeDiv(num, den decimal.Decimal, col *Collector, component, field string) decimal.Decimal {
	if den.Sign() <= 0 {
		col.Add(DivisionGuard, component, "%s is %s, per-piece share set to 0", field, den)
		return decimal.Zero
	}
	return num.Div(den)
}
