package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

var (
	workingDaysPerMonth = decimal.NewFromInt(30)
	palletsPerTruck     = decimal.NewFromInt(34)
	palletFootprintLM   = decimal.NewFromFloat(0.4)
	spaceRateIntlPerLM  = decimal.NewFromInt(1500)
	spaceRateDomPerLM   = decimal.NewFromInt(800)
	hundred             = decimal.NewFromInt(100)
)

// TransportBreakdown holds the transport cost of one pair
type TransportBreakdown struct {
	CostPerLU    decimal.Decimal
	CostPerPiece decimal.Decimal
}

// transportCost dispatches between the manual per-LU rate and the lane table
// workflow.
func (c *Calculator) transportCost(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) TransportBreakdown {
	if in.Transport.AutoCalculation {
		return c.transportCostAuto(in, refs, pkg, col)
	}
	return c.transportCostManual(in, pkg, col)
}

// transportCostManual divides the configured rate per logistics unit over the
// LU fill quantity. Sea shipments divide by the oversea fill quantity, and the
// FCA/FOB incoterms add the bonded warehouse rate over the standard fill.
func (c *Calculator) transportCostManual(in Input, pkg PackagingBreakdown, col *Collector) TransportBreakdown {
	t := in.Transport
	b := TransportBreakdown{CostPerLU: t.CostPerLU}

	standardFill := pkg.StandardFillPerLU
	if t.Mode == entities.ModeSea {
		overseaFill := floorAtOne(in.Packaging.OverseaFillQty, col, "transport", "oversea fill quantity")
		b.CostPerPiece = t.CostPerLU.Div(overseaFill)
		if in.Operations.Incoterm.BondedRelevant() {
			b.CostPerPiece = b.CostPerPiece.Add(t.BondedCostPerLU.Div(standardFill))
		}
		return b
	}

	b.CostPerPiece = t.CostPerLU.Div(standardFill)
	return b
}

// transportCostAuto derives the cost from the lane price table in five steps:
// unit weight, logistics-unit aggregation, lane identification, weight/space
// based pricing, and the per-piece division.
func (c *Calculator) transportCostAuto(in Input, refs pairRefs, pkg PackagingBreakdown, col *Collector) TransportBreakdown {
	daily := in.Material.DailyDemand

	// Step 1: weight of one filled packaging unit and demand per delivery.
	unitWeight := in.Material.WeightKg.Mul(pkg.FillPerBox).Add(refs.box.WeightKg)
	deliveries := floorAtOne(decimal.NewFromInt(int64(in.Supplier.DeliveriesPerMonth)), col, "transport", "deliveries per month")
	monthlyDemand := daily.Mul(workingDaysPerMonth).Div(deliveries)
	unitsPerDelivery := monthlyDemand.Div(pkg.FillPerBox)

	// Step 2: pallets, shipment weight, loading meters.
	pallets := unitsPerDelivery.Div(pkg.UnitsPerLU).Ceil()
	weightPerPallet := pkg.UnitsPerLU.Mul(unitWeight).Add(refs.pallet.AvgWeightKg)
	shipmentWeight := pallets.Mul(weightPerPallet)
	stack := floorAtOne(in.Transport.StackabilityFactor, col, "transport", "stackability factor")
	loadingMeters := pallets.Div(stack).Mul(palletFootprintLM)

	// Step 3: lane identification by country and zip prefix.
	lane, err := c.lanes.FindLane(in.Supplier.Country, in.Supplier.ZipPrefix, in.Destination.Country, in.Destination.Zip)
	if err != nil {
		col.Add(LookupMiss, "transport", "no lane for %s%s -> %s%s: %v",
			in.Supplier.Country, in.Supplier.ZipPrefix, in.Destination.Country, in.Destination.Zip, err)
		return TransportBreakdown{}
	}

	// Step 4: weight-bracket price against the space-based floor, full truck
	// handling above the pallet capacity.
	var base decimal.Decimal
	if pallets.GreaterThan(palletsPerTruck) {
		fullTrucks := pallets.Div(palletsPerTruck).Floor()
		excessPallets := pallets.Sub(fullTrucks.Mul(palletsPerTruck))
		excessPrice, _ := lane.PriceForWeight(excessPallets.Mul(weightPerPallet))
		base = fullTrucks.Mul(lane.FullTruckPrice).Add(excessPrice)
	} else {
		weightPrice, _ := lane.PriceForWeight(shipmentWeight)
		spaceRate := spaceRateDomPerLM
		if lane.International() {
			spaceRate = spaceRateIntlPerLM
		}
		base = decimal.Max(weightPrice, loadingMeters.Mul(spaceRate))
	}
	price := base.Add(base.Mul(lane.FuelSurchargePct).Div(hundred))

	// Step 5: division over the monthly demand covered by one delivery.
	b := TransportBreakdown{
		CostPerLU:    safeDiv(price, pallets, col, "transport", "pallet count"),
		CostPerPiece: safeDiv(price, monthlyDemand, col, "transport", "monthly demand per delivery"),
	}
	if in.Transport.BondedWarehouse && in.Transport.Mode == entities.ModeSea && in.Operations.Incoterm.BondedRelevant() {
		b.CostPerPiece = b.CostPerPiece.Add(safeDiv(in.Transport.BondedCostPerLU, monthlyDemand, col, "transport", "monthly demand per delivery"))
	}
	return b
}
