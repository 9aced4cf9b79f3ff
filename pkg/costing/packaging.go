package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// scrapWoodRatePerTon is the disposal rate applied to annual wooden box scrap.
var scrapWoodRatePerTon = decimal.NewFromInt(160)

var thousand = decimal.NewFromInt(1000)

// pairRefs holds the catalog entries resolved once per calculation. A missed
// lookup leaves a zero-valued entry so every dependent formula degrades to a
// zero contribution.
type pairRefs struct {
	box      entities.StandardBox
	pallet   entities.PalletAccessory
	tray     entities.TrayItem
	spPallet entities.AdditionalPackagingItem
	spCover  entities.AdditionalPackagingItem
}

// resolveRefs looks up every catalog entry the pair needs. Misses are recorded
// as LookupMiss diagnostics and substituted with zero-valued entries.
func (c *Calculator) resolveRefs(p entities.PackagingConfig, col *Collector) pairRefs {
	var refs pairRefs

	if box, err := c.catalog.StandardBox(p.BoxType); err != nil {
		col.Add(LookupMiss, "packaging", "standard box %q not in catalog: %v", p.BoxType, err)
	} else {
		refs.box = *box
	}

	if pallet, err := c.catalog.Pallet(p.PalletType); err != nil {
		col.Add(LookupMiss, "packaging", "pallet %q not in catalog: %v", p.PalletType, err)
	} else {
		refs.pallet = *pallet
	}

	if p.SpecialPackagingEnabled() {
		if tray, err := c.catalog.Tray(p.SpecialPackaging); err != nil {
			col.Add(LookupMiss, "packaging", "tray for variant %s not in catalog: %v", p.SpecialPackaging, err)
		} else {
			refs.tray = *tray
		}
	}

	// The standalone tray variant ships on the special pallet, so its catalog
	// entry is needed even without the extra pallet/cover option.
	if p.AddSpecialPallet || p.SpecialPackaging == entities.SPStandaloneTray {
		if item, err := c.catalog.AdditionalItem(entities.AdditionalItemPallet); err != nil {
			col.Add(LookupMiss, "packaging", "additional item %q not in catalog: %v", entities.AdditionalItemPallet, err)
		} else {
			refs.spPallet = *item
		}
		if item, err := c.catalog.AdditionalItem(entities.AdditionalItemCover); err != nil {
			col.Add(LookupMiss, "packaging", "additional item %q not in catalog: %v", entities.AdditionalItemCover, err)
		} else {
			refs.spCover = *item
		}
	}

	return refs
}

// PackagingBreakdown holds the packaging cost components of one pair plus the
// fill quantities and loop durations the transport, CO2 and warehouse engines
// reuse.
type PackagingBreakdown struct {
	LoopDaysPlant     decimal.Decimal
	LoopDaysTotal     decimal.Decimal // plant loop plus sub-supplier box days
	FillPerBox        decimal.Decimal // pieces per box, floored at 1
	UnitsPerLU        decimal.Decimal // boxes per logistics unit, floored at 1
	StandardFillPerLU decimal.Decimal // pieces per logistics unit
	SpecialFillPerLU  decimal.Decimal // variant dependent, zero without special packaging

	PlantCost    decimal.Decimal
	CoCCost      decimal.Decimal
	TotalCost    decimal.Decimal
	CostPerPiece decimal.Decimal
}

// EffectiveFillPerLU selects the special fill quantity when special packaging
// is enabled and its fill is positive, the standard fill otherwise.
func (b PackagingBreakdown) EffectiveFillPerLU(specialEnabled bool) decimal.Decimal {
	if specialEnabled && b.SpecialFillPerLU.IsPositive() {
		return b.SpecialFillPerLU
	}
	return b.StandardFillPerLU
}

// packagingCost computes the packaging loop, the box and pallet quantities of
// the plant and CoC phases, and the amortized packaging cost per piece.
func (c *Calculator) packagingCost(in Input, refs pairRefs, col *Collector) PackagingBreakdown {
	p := in.Packaging
	daily := in.Material.DailyDemand

	var b PackagingBreakdown
	b.LoopDaysPlant = p.Loop.TotalDays()
	b.LoopDaysTotal = b.LoopDaysPlant
	if in.Operations.UsesSubSupplier {
		b.LoopDaysTotal = b.LoopDaysTotal.Add(in.Operations.SubSupplierBoxDays)
	}

	fillBox := floorAtOne(p.FillQtyPerBox, col, "packaging", "fill quantity per box")
	unitsPerLU := floorAtOne(refs.box.UnitsPerLU, col, "packaging", "boxes per logistics unit")
	b.FillPerBox = fillBox
	b.UnitsPerLU = unitsPerLU
	b.StandardFillPerLU = fillBox.Mul(unitsPerLU)
	b.SpecialFillPerLU = specialFillPerLU(p, unitsPerLU, col)

	// Plant phase: boxes circulate in stacks of ten for the whole plant loop.
	boxesPlant := ceilToTen(daily.Mul(b.LoopDaysPlant).Div(fillBox))
	lusPlant := boxesPlant.Div(unitsPerLU).Ceil()
	b.PlantCost = boxesPlant.Mul(refs.box.PricePerUnit.Add(p.ExtraUnitPrice)).
		Add(lusPlant.Mul(refs.pallet.AvgPrice))

	// CoC phase covers the sub-supplier box float plus any special packaging.
	var subDays decimal.Decimal
	if in.Operations.UsesSubSupplier {
		subDays = in.Operations.SubSupplierBoxDays
	}
	boxesCoC := daily.Mul(subDays).Div(fillBox)
	lusCoC := boxesCoC.Div(unitsPerLU).Ceil()

	var trays, covers decimal.Decimal
	if p.SpecialPackagingEnabled() {
		trayTurnover := floorAtOne(p.FillQtyPerTray.Mul(b.LoopDaysTotal), col, "packaging", "tray fill over loop")
		trays = daily.Div(trayTurnover).Ceil()
		if p.AddSpecialPallet {
			perPallet := floorAtOne(p.TraysPerSpecialPallet, col, "packaging", "trays per special pallet")
			covers = trays.Div(perPallet).Ceil()
		}
	}

	b.CoCCost = boxesCoC.Mul(refs.box.PricePerUnit).
		Add(lusCoC.Mul(refs.pallet.AvgPrice)).
		Add(trays.Mul(refs.tray.PricePerUnit)).
		Add(covers.Mul(refs.spPallet.PricePerUnit.Add(refs.spCover.PricePerUnit)))
	if p.SpecialPackagingEnabled() {
		b.CoCCost = b.CoCCost.Add(p.ToolingCost)
	}

	b.TotalCost = b.PlantCost.Add(b.CoCCost)

	scrap := p.ScrapCardboard.Add(scrapWood(in.Material, p, refs.box, fillBox))
	perPiece := safeDiv(scrap.Add(b.TotalCost), LifetimeVolume(in.Material), col, "packaging", "lifetime volume")
	b.CostPerPiece = roundCeilPerPiece(perPiece)

	return b
}

// scrapWood returns the annual disposal cost of wooden box scrap. Boxes of
// any other material scrap free of charge.
func scrapWood(m entities.Material, p entities.PackagingConfig, box entities.StandardBox, fillBox decimal.Decimal) decimal.Decimal {
	if box.Material != entities.BoxWood {
		return decimal.Zero
	}
	return m.AnnualVolume.Div(fillBox).Mul(box.WeightKg.Div(thousand)).Mul(scrapWoodRatePerTon)
}

// specialFillPerLU derives the pieces per logistics unit under the configured
// special packaging variant. Transport, CO2 and warehouse cost all key off
// this quantity.
func specialFillPerLU(p entities.PackagingConfig, unitsPerLU decimal.Decimal, col *Collector) decimal.Decimal {
	switch p.SpecialPackaging {
	case entities.SPInlayTrayPalletSize:
		fillTray := floorAtOne(p.FillQtyPerTray, col, "packaging", "fill quantity per tray")
		return p.FillQtyPerBox.Div(fillTray.Mul(fillTray))
	case entities.SPInlayTray:
		return p.FillQtyPerBox.Mul(unitsPerLU)
	case entities.SPStandaloneTray:
		return p.FillQtyPerTray.Mul(p.TraysPerSpecialPallet).Mul(p.SpecialPalletsPerLU)
	default:
		return decimal.Zero
	}
}
