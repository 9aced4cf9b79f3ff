package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// Energy consumption factors per transport mode on a ton-km basis.
var (
	energyFactorSea  = decimal.NewFromFloat(0.006)
	energyFactorRoad = decimal.NewFromFloat(0.04415)
	energyFactorRail = decimal.NewFromFloat(0.0085)
)

// CO2Breakdown holds the emission figures of one pair
type CO2Breakdown struct {
	WeightPerLUKg decimal.Decimal
	TotalTons     decimal.Decimal
	EmissionKg    decimal.Decimal
	CostPerPiece  decimal.Decimal
}

// energyConsumptionFactor returns the ton-km energy factor for a transport mode.
func energyConsumptionFactor(mode entities.TransportMode, col *Collector) decimal.Decimal {
	switch mode {
	case entities.ModeSea:
		return energyFactorSea
	case entities.ModeRoad:
		return energyFactorRoad
	case entities.ModeRail:
		return energyFactorRail
	default:
		col.Add(ComputationError, "co2", "no energy factor for transport mode %d", mode)
		return decimal.Zero
	}
}

// co2Cost derives the shipment weight per logistics unit, the annual emission
// and the carbon cost per piece.
func (c *Calculator) co2Cost(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) CO2Breakdown {
	var b CO2Breakdown
	b.WeightPerLUKg = weightPerLU(in, refs, pkg, col)

	fill := pkg.EffectiveFillPerLU(in.Packaging.SpecialPackagingEnabled())
	fill = floorAtOne(fill, col, "co2", "fill quantity per logistics unit")
	b.TotalTons = b.WeightPerLUKg.Mul(in.Material.AnnualVolume.Div(fill)).Div(thousand)

	factor := energyConsumptionFactor(in.Transport.Mode, col)
	b.EmissionKg = b.TotalTons.Mul(factor).Mul(in.Supplier.DistanceKm).Mul(in.CO2.ConversionFactor)

	cost := b.EmissionKg.Mul(in.CO2.CostPerTonCO2.Div(thousand))
	b.CostPerPiece = roundCeilPerPiece(safeDiv(cost, in.Material.AnnualVolume, col, "co2", "annual volume"))
	return b
}

// weightPerLU mirrors the special packaging variant branching of the
// packaging engine, substituting piece and catalog weights for prices.
func weightPerLU(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) decimal.Decimal {
	p := in.Packaging
	pieceWeight := in.Material.WeightKg

	switch p.SpecialPackaging {
	case entities.SPInlayTrayPalletSize:
		fillTray := floorAtOne(p.FillQtyPerTray, col, "co2", "fill quantity per tray")
		return p.FillQtyPerBox.Mul(pieceWeight).
			Add(p.FillQtyPerBox.Div(fillTray).Mul(refs.tray.WeightKg)).
			Add(refs.box.WeightKg)
	case entities.SPInlayTray:
		fillTray := floorAtOne(p.FillQtyPerTray, col, "co2", "fill quantity per tray")
		return pkg.StandardFillPerLU.Mul(pieceWeight).
			Add(p.FillQtyPerBox.Div(fillTray).Mul(refs.tray.WeightKg)).
			Add(refs.pallet.AvgWeightKg)
	case entities.SPStandaloneTray:
		return p.FillQtyPerTray.Mul(p.TraysPerSpecialPallet).Mul(p.SpecialPalletsPerLU).Mul(pieceWeight).
			Add(p.SpecialPalletsPerLU.Mul(refs.spPallet.WeightKg))
	default:
		return pieceWeight.Mul(pkg.StandardFillPerLU).
			Add(refs.box.WeightKg.Mul(pkg.UnitsPerLU)).
			Add(refs.pallet.AvgWeightKg)
	}
}
