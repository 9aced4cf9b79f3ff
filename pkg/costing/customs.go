package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// customsCostPerPiece computes duty and tariff per piece. The duty base is
// the piece price plus the transport cost per piece. An applied customs
// preference zeroes the whole contribution regardless of declared rates.
func (c *Calculator) customsCostPerPiece(m entities.Material, cfg entities.CustomsConfig, transportPerPiece decimal.Decimal) decimal.Decimal {
	if cfg.UsePreference {
		return decimal.Zero
	}

	cost := decimal.Zero
	if cfg.DutyRatePercent.IsPositive() {
		cost = cost.Add(cfg.DutyRatePercent.Div(hundred).Mul(m.PiecePrice.Add(transportPerPiece)))
	}
	if cfg.TariffRatePercent.IsPositive() {
		cost = cost.Add(cfg.TariffRatePercent.Div(hundred).Mul(m.PiecePrice))
	}
	return cost
}
