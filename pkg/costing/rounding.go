package costing

import (
	"github.com/shopspring/decimal"
)

// ceilToTen rounds a box count up to the next whole multiple of ten. Boxes are
// ordered in stacks of ten, so the plant loop never holds a partial stack.
func ceilToTen(q decimal.Decimal) decimal.Decimal {
	return q.Div(ten).Ceil().Mul(ten)
}

// roundCeilPerPiece rounds a per-piece cost up to three decimal places and
// floors the result at zero.
func roundCeilPerPiece(v decimal.Decimal) decimal.Decimal {
	if v.Sign() <= 0 {
		return decimal.Zero
	}
	return v.RoundCeil(3)
}
