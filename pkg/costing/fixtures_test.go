package costing

import (
	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/memory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTestCalculator builds a calculator over small in-memory reference tables
// shared by the package tests.
func newTestCalculator() *Calculator {
	catalog := memory.NewPackagingCatalog()
	catalog.AddStandardBox(entities.StandardBox{
		Name:         "KLT-6280",
		PricePerUnit: dec("1.20"),
		WeightKg:     dec("2"),
		UnitsPerLU:   dec("20"),
		Material:     entities.BoxCardboard,
	})
	catalog.AddStandardBox(entities.StandardBox{
		Name:         "WOOD-1208",
		PricePerUnit: dec("8"),
		WeightKg:     dec("4"),
		UnitsPerLU:   dec("4"),
		Material:     entities.BoxWood,
	})
	catalog.AddPallet(entities.PalletAccessory{
		Name:        "EPAL",
		AvgPrice:    dec("24.50"),
		AvgWeightKg: dec("25"),
	})
	catalog.AddTray(entities.TrayItem{
		Variant:      entities.SPInlayTray,
		PricePerUnit: dec("3.50"),
		WeightKg:     dec("0.8"),
	})
	catalog.AddTray(entities.TrayItem{
		Variant:      entities.SPStandaloneTray,
		PricePerUnit: dec("5"),
		WeightKg:     dec("1.2"),
	})
	catalog.AddAdditionalItem(entities.AdditionalPackagingItem{
		Name:         entities.AdditionalItemPallet,
		PricePerUnit: dec("12"),
		WeightKg:     dec("18"),
	})
	catalog.AddAdditionalItem(entities.AdditionalPackagingItem{
		Name:         entities.AdditionalItemCover,
		PricePerUnit: dec("6"),
		WeightKg:     dec("2"),
	})

	repacking := memory.NewRepackingTable()
	repacking.AddOperation(entities.RepackingOperation{
		WeightCategory:       "<1kg",
		SupplierPackaging:    "Cardboard",
		DestinationPackaging: "KLT",
		Cost:                 dec("0.02"),
		Unit:                 entities.UnitPerPart,
	})
	repacking.AddOperation(entities.RepackingOperation{
		WeightCategory:       "<1kg",
		SupplierPackaging:    "Cardboard",
		DestinationPackaging: "Tray",
		Cost:                 dec("0.50"),
		Unit:                 entities.UnitPerTray,
	})

	lanes := memory.NewTransportLaneTable()
	lanes.AddLane(entities.TransportLane{
		LaneID:        "DE71-DE38",
		OriginCountry: "DE",
		OriginZip:     "71",
		DestCountry:   "DE",
		DestZip:       "38",
		PricesByWeight: []entities.WeightBracketPrice{
			{MaxWeightKg: dec("1000"), Price: dec("300")},
			{MaxWeightKg: dec("2500"), Price: dec("450")},
			{MaxWeightKg: dec("5000"), Price: dec("700")},
		},
		FullTruckPrice:   dec("1200"),
		FuelSurchargePct: dec("10"),
	})
	lanes.AddLane(entities.TransportLane{
		LaneID:        "CZ62-DE38",
		OriginCountry: "CZ",
		OriginZip:     "62",
		DestCountry:   "DE",
		DestZip:       "38",
		PricesByWeight: []entities.WeightBracketPrice{
			{MaxWeightKg: dec("2500"), Price: dec("600")},
			{MaxWeightKg: dec("10000"), Price: dec("950")},
		},
		FullTruckPrice: dec("1800"),
	})

	return NewCalculator(catalog, repacking, lanes)
}

// baseInput returns a plain domestic road pair: standard cardboard box, manual
// transport rate, no special packaging, no customs.
func baseInput() Input {
	return Input{
		Material: entities.Material{
			ID:            "M-1001",
			Description:   "bracket",
			WeightKg:      dec("0.50"),
			AnnualVolume:  dec("120000"),
			DailyDemand:   dec("480"),
			LifetimeYears: dec("5"),
			PiecePrice:    dec("2.00"),
		},
		Supplier: entities.Supplier{
			ID:                 "V-2001",
			Name:               "Stanzwerk Sued",
			Country:            "DE",
			ZipPrefix:          "71",
			DeliveriesPerMonth: 4,
			DistanceKm:         dec("500"),
		},
		Destination: entities.Plant{Name: "Werk Nord", Country: "DE", Zip: "38112"},
		Packaging: entities.PackagingConfig{
			BoxType:       "KLT-6280",
			FillQtyPerBox: dec("50"),
			PalletType:    "EPAL",
			Loop: entities.LoopStages{
				GoodsReceiptDays:  dec("2"),
				StockRawDays:      dec("3"),
				ProductionDays:    dec("5"),
				StockFinishedDays: dec("1"),
				DispatchDays:      dec("1"),
				TransitDays:       dec("1"),
				BufferDays:        dec("1"),
			},
		},
		Transport: entities.TransportConfig{
			Mode:               entities.ModeRoad,
			CostPerLU:          dec("500"),
			StackabilityFactor: dec("2"),
		},
		Operations: entities.OperationsConfig{
			Incoterm:     "DAP",
			LeadTimeDays: dec("10"),
		},
		Warehouse: entities.WarehouseConfig{CostPerLocationMonthly: dec("10")},
		CO2: entities.CO2Config{
			CostPerTonCO2:    dec("100"),
			ConversionFactor: dec("1"),
		},
	}
}
