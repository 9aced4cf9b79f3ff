package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/refdata"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create configuration stores
	materials := memory.NewMaterialRepository()
	suppliers := memory.NewSupplierRepository()
	pairs := memory.NewPairConfigRepository()

	// Set up a small sourcing scenario
	setupSourcingScenario(materials, suppliers, pairs)

	// Create the cost calculator over the built-in reference tables
	calculator := costing.NewCalculator(
		refdata.DefaultPackagingCatalog(),
		refdata.DefaultRepackingTable(),
		refdata.DefaultLaneTable(),
	)
	service := services.NewCostingService(calculator, materials, suppliers, pairs,
		entities.Plant{Name: "Werk Braunschweig", Country: "DE", Zip: "38112"})

	fmt.Println("🚚 Calculating logistics cost for all configured pairs...")
	fmt.Println()

	batch, err := service.CalculateAll(ctx)
	if err != nil {
		fmt.Printf("❌ Calculation failed: %v\n", err)
		return
	}

	fmt.Printf("📊 Run %s: %d calculated, %d skipped\n\n",
		batch.RunID, len(batch.Results), len(batch.Skipped))

	for _, result := range batch.Results {
		fmt.Printf("Material %s from supplier %s\n", result.MaterialID, result.SupplierID)
		fmt.Printf("  Packaging:  %s €/piece\n", result.PackagingCostPerPiece)
		fmt.Printf("  Repacking:  %s €/piece\n", result.RepackingCostPerPiece)
		fmt.Printf("  Transport:  %s €/piece (%s €/LU)\n",
			result.TransportCostPerPiece, result.TransportCostPerLU)
		fmt.Printf("  Customs:    %s €/piece\n", result.CustomsCostPerPiece)
		fmt.Printf("  CO2:        %s €/piece (%s kg per LU)\n",
			result.CO2CostPerPiece, result.CO2EmissionKg)
		fmt.Printf("  Warehouse:  %s €/piece\n", result.WarehouseCostPerPiece)
		fmt.Printf("  Additional: %s €/piece\n", result.AdditionalCostPerPiece)
		fmt.Printf("  Total:      %s €/piece, %s €/year\n",
			result.TotalCostPerPiece, result.TotalAnnualCost)
		for _, diag := range result.Diagnostics {
			fmt.Printf("  ⚠️  %s/%s: %s\n", diag.Kind, diag.Component, diag.Message)
		}
		fmt.Println()
	}

	for _, skipped := range batch.Skipped {
		fmt.Printf("⏭️  Skipped %s/%s: %s\n",
			skipped.MaterialID, skipped.SupplierID, skipped.Reason)
	}
}

func setupSourcingScenario(
	materials *memory.MaterialRepository,
	suppliers *memory.SupplierRepository,
	pairs *memory.PairConfigRepository,
) {
	must(materials.SaveMaterial(&entities.Material{
		ID:            "M-845512",
		Description:   "Bracket, stamped steel",
		WeightKg:      decimal.RequireFromString("0.5"),
		AnnualVolume:  decimal.NewFromInt(120000),
		DailyDemand:   decimal.NewFromInt(480),
		LifetimeYears: decimal.NewFromInt(5),
		PiecePrice:    decimal.RequireFromString("2.00"),
	}))

	must(suppliers.SaveSupplier(&entities.Supplier{
		ID:                 "V-100233",
		Name:               "Stanztechnik Ludwigsburg GmbH",
		Country:            "DE",
		ZipPrefix:          "71",
		DeliveriesPerMonth: 4,
		DistanceKm:         decimal.NewFromInt(500),
	}))

	must(pairs.SavePairConfig(&entities.PairConfig{
		MaterialID: "M-845512",
		SupplierID: "V-100233",
		Packaging: entities.PackagingConfig{
			BoxType:       "KLT6414",
			FillQtyPerBox: decimal.NewFromInt(50),
			PalletType:    "EPAL",
			Loop: entities.LoopStages{
				GoodsReceiptDays: decimal.NewFromInt(2),
				StockRawDays:     decimal.NewFromInt(4),
				ProductionDays:   decimal.NewFromInt(3),
				DispatchDays:     decimal.NewFromInt(2),
				TransitDays:      decimal.NewFromInt(2),
				BufferDays:       decimal.NewFromInt(1),
			},
		},
		Transport: entities.TransportConfig{
			Mode:               entities.ModeRoad,
			AutoCalculation:    true,
			StackabilityFactor: decimal.NewFromInt(2),
		},
		Operations: entities.OperationsConfig{
			Incoterm:     "DAP",
			LeadTimeDays: decimal.NewFromInt(10),
		},
		Warehouse: entities.WarehouseConfig{
			CostPerLocationMonthly: decimal.NewFromInt(10),
		},
		CO2: entities.CO2Config{
			CostPerTonCO2:    decimal.NewFromInt(100),
			ConversionFactor: decimal.NewFromInt(1),
		},
		Customs: entities.CustomsConfig{
			DutyRatePercent: decimal.RequireFromString("4.5"),
			UsePreference:   true,
		},
		Additional: []entities.AdditionalCost{
			{Name: "sample approval", Value: decimal.NewFromInt(1500)},
		},
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
