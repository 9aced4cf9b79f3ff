package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/memory"
)

// Built-in reference tables. They cover the common VDA small load carriers,
// the standard repacking rate card and a couple of central European lanes, so
// the CLI works out of the box; productive deployments replace them with
// their own tables.

// Weight categories of the repacking rate card.
const (
	RepackingNone     = "None"
	RepackingLight    = "light (up to 0,050kg)"
	RepackingModerate = "moderate (up to 0,150kg)"
	RepackingHeavy    = "heavy (from 0,150kg)"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultPackagingCatalog returns the built-in packaging catalog
func DefaultPackagingCatalog() *memory.PackagingCatalog {
	catalog := memory.NewPackagingCatalog()

	boxes := []entities.StandardBox{
		{Name: "KLT3214", Characteristics: "300x200x147", PricePerUnit: d("4.40"), WeightKg: d("0.67"), UnitsPerLU: d("96"), UnitsPerLayer: d("16"), Material: entities.BoxPlastic},
		{Name: "KLT4314", Characteristics: "400x300x147", PricePerUnit: d("6.10"), WeightKg: d("1.18"), UnitsPerLU: d("48"), UnitsPerLayer: d("8"), Material: entities.BoxPlastic},
		{Name: "KLT6414", Characteristics: "600x400x147", PricePerUnit: d("9.50"), WeightKg: d("1.96"), UnitsPerLU: d("24"), UnitsPerLayer: d("4"), Material: entities.BoxPlastic},
		{Name: "KLT6428", Characteristics: "600x400x280", PricePerUnit: d("13.20"), WeightKg: d("2.95"), UnitsPerLU: d("12"), UnitsPerLayer: d("4"), Material: entities.BoxPlastic},
		{Name: "Cardboard600", Characteristics: "600x400x300 one-way", PricePerUnit: d("1.85"), WeightKg: d("0.80"), UnitsPerLU: d("12"), UnitsPerLayer: d("4"), Material: entities.BoxCardboard},
		{Name: "WoodCrate800", Characteristics: "800x600x500 one-way", PricePerUnit: d("18.00"), WeightKg: d("9.50"), UnitsPerLU: d("4"), UnitsPerLayer: d("2"), Material: entities.BoxWood},
	}
	for _, box := range boxes {
		catalog.AddStandardBox(box)
	}

	catalog.AddPallet(entities.PalletAccessory{Name: "EPAL", AvgPrice: d("24.50"), AvgWeightKg: d("25")})
	catalog.AddPallet(entities.PalletAccessory{Name: "OneWay", AvgPrice: d("9.80"), AvgWeightKg: d("16")})

	catalog.AddTray(entities.TrayItem{Variant: entities.SPInlayTray, PricePerUnit: d("3.50"), WeightKg: d("0.80")})
	catalog.AddTray(entities.TrayItem{Variant: entities.SPInlayTrayPalletSize, PricePerUnit: d("8.20"), WeightKg: d("2.40")})
	catalog.AddTray(entities.TrayItem{Variant: entities.SPStandaloneTray, PricePerUnit: d("5.00"), WeightKg: d("1.20")})

	catalog.AddAdditionalItem(entities.AdditionalPackagingItem{Name: entities.AdditionalItemPallet, PricePerUnit: d("12.00"), WeightKg: d("18")})
	catalog.AddAdditionalItem(entities.AdditionalPackagingItem{Name: entities.AdditionalItemCover, PricePerUnit: d("6.00"), WeightKg: d("2")})

	return catalog
}

// DefaultRepackingTable returns the built-in repacking rate card
func DefaultRepackingTable() *memory.RepackingTable {
	table := memory.NewRepackingTable()

	ops := []entities.RepackingOperation{
		{WeightCategory: RepackingNone, SupplierPackaging: "N/A", OperationType: "N/A", DestinationPackaging: "N/A", Cost: d("0"), Unit: entities.UnitPerPart},

		{WeightCategory: RepackingLight, SupplierPackaging: "one-way tray in cardboard/wooden box", OperationType: "each part individually", DestinationPackaging: "returnable trays", Cost: d("0.10"), Unit: entities.UnitPerPart},
		{WeightCategory: RepackingLight, SupplierPackaging: "one-way tray in cardboard/wooden box", OperationType: "each tray individually", DestinationPackaging: "one-way tray in KLT", Cost: d("0.12"), Unit: entities.UnitPerTray},
		{WeightCategory: RepackingLight, SupplierPackaging: "Bulk (poss. in bag) in cardboard/wooden box", OperationType: "whole bag or dump without bag", DestinationPackaging: "KLT", Cost: d("0.24"), Unit: entities.UnitPerBag},

		{WeightCategory: RepackingModerate, SupplierPackaging: "one-way blister in cardboard/wooden box", OperationType: "each part individually", DestinationPackaging: "returnable trays", Cost: d("0.15"), Unit: entities.UnitPerPart},
		{WeightCategory: RepackingModerate, SupplierPackaging: "one-way blister in cardboard/wooden box", OperationType: "whole tray", DestinationPackaging: "one-way tray in KLT", Cost: d("0.20"), Unit: entities.UnitPerTray},
		{WeightCategory: RepackingModerate, SupplierPackaging: "Bulk (poss. in bag) in cardboard/wooden box", OperationType: "whole bag or dump without bag", DestinationPackaging: "KLT", Cost: d("0.40"), Unit: entities.UnitPerBag},

		{WeightCategory: RepackingHeavy, SupplierPackaging: "one-way blister in cardboard/wooden box", OperationType: "each part individually", DestinationPackaging: "returnable trays", Cost: d("0.33"), Unit: entities.UnitPerPart},
		{WeightCategory: RepackingHeavy, SupplierPackaging: "one-way blister in cardboard/wooden box", OperationType: "whole tray", DestinationPackaging: "one-way tray in KLT", Cost: d("0.65"), Unit: entities.UnitPerTray},
		{WeightCategory: RepackingHeavy, SupplierPackaging: "Bulk (poss. in bag) in cardboard/wooden box", OperationType: "whole bag or dump without bag", DestinationPackaging: "KLT", Cost: d("1.00"), Unit: entities.UnitPerBag},
	}
	for _, op := range ops {
		table.AddOperation(op)
	}

	return table
}

// DefaultLaneTable returns a small built-in lane price table
func DefaultLaneTable() *memory.TransportLaneTable {
	table := memory.NewTransportLaneTable()

	lanes := []entities.TransportLane{
		{
			LaneID: "DE71-DE38", OriginCountry: "DE", OriginZip: "71", OriginCity: "Ludwigsburg",
			DestCountry: "DE", DestZip: "38", DestCity: "Braunschweig",
			PricesByWeight: []entities.WeightBracketPrice{
				{MaxWeightKg: d("500"), Price: d("185")},
				{MaxWeightKg: d("1000"), Price: d("290")},
				{MaxWeightKg: d("2500"), Price: d("445")},
				{MaxWeightKg: d("5000"), Price: d("690")},
				{MaxWeightKg: d("10000"), Price: d("980")},
			},
			FullTruckPrice: d("1250"), FuelSurchargePct: d("12"),
			LeadTime: entities.LaneLeadTime{Groupage: "48h", LTL: "24h", FTL: "24h"},
		},
		{
			LaneID: "CZ62-DE38", OriginCountry: "CZ", OriginZip: "62", OriginCity: "Brno",
			DestCountry: "DE", DestZip: "38", DestCity: "Braunschweig",
			PricesByWeight: []entities.WeightBracketPrice{
				{MaxWeightKg: d("500"), Price: d("260")},
				{MaxWeightKg: d("1000"), Price: d("420")},
				{MaxWeightKg: d("2500"), Price: d("640")},
				{MaxWeightKg: d("5000"), Price: d("930")},
				{MaxWeightKg: d("10000"), Price: d("1340")},
			},
			FullTruckPrice: d("1750"), FuelSurchargePct: d("14"),
			LeadTime: entities.LaneLeadTime{Groupage: "96h", LTL: "72h", FTL: "48h"},
		},
		{
			LaneID: "PL50-DE38", OriginCountry: "PL", OriginZip: "50", OriginCity: "Wroclaw",
			DestCountry: "DE", DestZip: "38", DestCity: "Braunschweig",
			PricesByWeight: []entities.WeightBracketPrice{
				{MaxWeightKg: d("500"), Price: d("240")},
				{MaxWeightKg: d("1000"), Price: d("390")},
				{MaxWeightKg: d("2500"), Price: d("600")},
				{MaxWeightKg: d("5000"), Price: d("880")},
				{MaxWeightKg: d("10000"), Price: d("1260")},
			},
			FullTruckPrice: d("1650"), FuelSurchargePct: d("14"),
			LeadTime: entities.LaneLeadTime{Groupage: "96h", LTL: "72h", FTL: "48h"},
		},
	}
	for _, lane := range lanes {
		table.AddLane(lane)
	}

	return table
}
