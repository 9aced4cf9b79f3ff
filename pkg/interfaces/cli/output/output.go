package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	RunTime   time.Duration
}

// Generate creates output in the specified format
func Generate(batch *dto.BatchResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(os.Stdout, batch, config)
	case "json":
		return generateJSONOutput(batch, config)
	case "csv":
		return generateCSVOutput(batch, config)
	case "html":
		return generateHTMLOutput(batch, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates the human-readable result table
func generateTextOutput(w io.Writer, batch *dto.BatchResult, config Config) error {
	fmt.Fprintf(w, "Logistics Cost Results\n")
	fmt.Fprintf(w, "======================\n\n")
	fmt.Fprintf(w, "Run ID: %s\n", batch.RunID)
	fmt.Fprintf(w, "Pairs: %d calculated, %d skipped\n", len(batch.Results), len(batch.Skipped))
	fmt.Fprintf(w, "Run Time: %v\n\n", config.RunTime)

	if len(batch.Results) > 0 {
		fmt.Fprintf(w, "%-12s %-12s %10s %10s %10s %10s %10s %10s %10s %12s %14s\n",
			"Material", "Supplier", "Pack/pc", "Repack/pc", "Customs/pc", "Transp/pc",
			"WH/pc", "CO2/pc", "Add/pc", "Total/pc", "Annual")
		for _, r := range batch.Results {
			fmt.Fprintf(w, "%-12s %-12s %10s %10s %10s %10s %10s %10s %10s %12s %14s\n",
				r.MaterialID, r.SupplierID,
				r.PackagingCostPerPiece, r.RepackingCostPerPiece, r.CustomsCostPerPiece,
				r.TransportCostPerPiece, r.WarehouseCostPerPiece, r.CO2CostPerPiece,
				r.AdditionalCostPerPiece, r.TotalCostPerPiece, r.TotalAnnualCost)
		}
		fmt.Fprintln(w)
	}

	if len(batch.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped Pairs:\n")
		for _, s := range batch.Skipped {
			fmt.Fprintf(w, "  %s / %s: %s\n", s.MaterialID, s.SupplierID, s.Reason)
		}
		fmt.Fprintln(w)
	}

	if config.Verbose {
		for _, r := range batch.Results {
			for _, d := range r.Diagnostics {
				fmt.Fprintf(w, "diagnostic %s/%s: %s\n", r.MaterialID, r.SupplierID, d)
			}
		}
	}

	return nil
}

// generateJSONOutput writes the full batch result to a JSON file
func generateJSONOutput(batch *dto.BatchResult, config Config) error {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "cost_results.json")
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	if config.Verbose {
		fmt.Printf("Results written to %s\n", filename)
	}
	return nil
}

// csvHeader lists the exported result columns in report order.
var csvHeader = []string{
	"material_id", "material_desc", "supplier_id", "supplier_name",
	"lifetime_volume",
	"packaging_cost_plant", "packaging_cost_coc", "packaging_cost_total", "packaging_cost_per_piece",
	"repacking_cost_per_piece",
	"duty_rate_percent", "customs_cost_per_piece",
	"transport_cost_per_lu", "transport_cost_per_piece",
	"co2_emission_kg", "co2_cost_per_piece",
	"inventory_days", "safety_stock_days", "storage_locations_total", "warehouse_cost_per_piece",
	"additional_cost_per_piece",
	"total_cost_per_piece", "total_annual_cost",
	"diagnostics",
}

// generateCSVOutput writes one row per calculated pair
func generateCSVOutput(batch *dto.BatchResult, config Config) error {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "cost_results.csv")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range batch.Results {
		row := []string{
			string(r.MaterialID), r.MaterialDesc, string(r.SupplierID), r.SupplierName,
			r.LifetimeVolume.String(),
			r.PackagingCostPlant.String(), r.PackagingCostCoC.String(),
			r.PackagingCostTotal.String(), r.PackagingCostPerPiece.String(),
			r.RepackingCostPerPiece.String(),
			r.DutyRatePercent.String(), r.CustomsCostPerPiece.String(),
			r.TransportCostPerLU.String(), r.TransportCostPerPiece.String(),
			r.CO2EmissionKg.String(), r.CO2CostPerPiece.String(),
			r.InventoryDays.String(), r.SafetyStockDays.String(),
			r.StorageLocationsTotal.String(), r.WarehouseCostPerPiece.String(),
			r.AdditionalCostPerPiece.String(),
			r.TotalCostPerPiece.String(), r.TotalAnnualCost.String(),
			fmt.Sprintf("%d", len(r.Diagnostics)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Results written to %s\n", filename)
	}
	return nil
}
