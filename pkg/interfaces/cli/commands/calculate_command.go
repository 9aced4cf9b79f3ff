package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/refdata"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/csv"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/jsonfile"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/memory"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/interfaces/cli/output"
)

// Config holds configuration for the calculate command
type Config struct {
	SnapshotFile string
	LanesFile    string
	MaterialID   string
	SupplierID   string
	OutputDir    string
	Format       string
	Workers      int
	PlantName    string
	PlantCountry string
	PlantZip     string
	Verbose      bool
	Help         bool
}

// CalculateCommand runs the cost calculation over a configuration snapshot
type CalculateCommand struct {
	config Config
}

// NewCalculateCommand creates a new calculate command with the given configuration
func NewCalculateCommand(config Config) *CalculateCommand {
	return &CalculateCommand{
		config: config,
	}
}

// Execute runs the calculate command
func (c *CalculateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("Loading configuration snapshot %s...\n", c.config.SnapshotFile)
	}

	snapshot, err := jsonfile.Load(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("error loading snapshot: %w", err)
	}

	materials := memory.NewMaterialRepository()
	suppliers := memory.NewSupplierRepository()
	pairs := memory.NewPairConfigRepository()
	if err := snapshot.Apply(materials, suppliers, pairs); err != nil {
		return fmt.Errorf("error applying snapshot: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("Loaded %d materials, %d suppliers, %d pair configs\n\n",
			len(snapshot.Materials), len(snapshot.Suppliers), len(snapshot.PairConfigs))
	}

	lanes, err := c.loadLaneTable()
	if err != nil {
		return err
	}

	calculator := costing.NewCalculator(
		refdata.DefaultPackagingCatalog(),
		refdata.DefaultRepackingTable(),
		lanes,
	)
	service := services.NewCostingServiceWithConfig(
		services.ServiceConfig{Workers: c.config.Workers},
		calculator, materials, suppliers, pairs,
		entities.Plant{
			Name:    c.config.PlantName,
			Country: c.config.PlantCountry,
			Zip:     c.config.PlantZip,
		},
	)

	startTime := time.Now()
	batch, err := c.runCalculation(ctx, service)
	if err != nil {
		return err
	}
	runTime := time.Since(startTime)

	if c.config.Verbose {
		fmt.Printf("Calculated %d pairs in %v\n\n", len(batch.Results), runTime)
	}

	return output.Generate(batch, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		RunTime:   runTime,
	})
}

// loadLaneTable returns the built-in lane price table, or a table loaded from
// a CSV rate sheet when one is given.
func (c *CalculateCommand) loadLaneTable() (*memory.TransportLaneTable, error) {
	if c.config.LanesFile == "" {
		return refdata.DefaultLaneTable(), nil
	}

	lanes, err := csv.NewLoader().LoadLanes(c.config.LanesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading lane rate sheet: %w", err)
	}
	table := memory.NewTransportLaneTable()
	for _, lane := range lanes {
		table.AddLane(lane)
	}
	if c.config.Verbose {
		fmt.Printf("Loaded %d transport lanes from %s\n", len(lanes), c.config.LanesFile)
	}
	return table, nil
}

// runCalculation evaluates either the single requested pair or every
// configured pair.
func (c *CalculateCommand) runCalculation(ctx context.Context, service *services.CostingService) (*dto.BatchResult, error) {
	if c.config.MaterialID == "" {
		batch, err := service.CalculateAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error running batch calculation: %w", err)
		}
		return batch, nil
	}

	startedAt := time.Now()
	result, err := service.CalculatePair(ctx,
		entities.MaterialID(c.config.MaterialID), entities.VendorID(c.config.SupplierID))
	if err != nil {
		return nil, fmt.Errorf("error calculating pair: %w", err)
	}
	return &dto.BatchResult{
		Results:     []*costing.Result{result},
		StartedAt:   startedAt,
		CompletedAt: time.Now(),
	}, nil
}

// validateInputs checks the command configuration
func (c *CalculateCommand) validateInputs() error {
	if c.config.SnapshotFile == "" {
		return fmt.Errorf("a configuration snapshot file is required (-snapshot)")
	}
	switch c.config.Format {
	case "text", "json", "csv", "html":
	default:
		return fmt.Errorf("unsupported output format: %s (use text, json, csv or html)", c.config.Format)
	}
	if c.config.MaterialID != "" && c.config.SupplierID == "" {
		return fmt.Errorf("-supplier is required when -material is given")
	}
	if c.config.SupplierID != "" && c.config.MaterialID == "" {
		return fmt.Errorf("-material is required when -supplier is given")
	}
	return nil
}

// showHelp prints usage information
func (c *CalculateCommand) showHelp() {
	fmt.Println("logicost calculate - logistics cost calculation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  logicost -snapshot <file> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -snapshot <file>   configuration snapshot (JSON)")
	fmt.Println("  -lanes <file>      transport lane rate sheet (CSV, replaces the built-in table)")
	fmt.Println("  -material <id>     calculate a single material (with -supplier)")
	fmt.Println("  -supplier <id>     calculate a single supplier (with -material)")
	fmt.Println("  -format <fmt>      output format: text, json, csv, html (default text)")
	fmt.Println("  -output <dir>      output directory for json/csv/html results")
	fmt.Println("  -workers <n>       concurrent pair calculations (default 4)")
	fmt.Println("  -plant-name <s>    receiving plant name")
	fmt.Println("  -plant-country <s> receiving plant country code")
	fmt.Println("  -plant-zip <s>     receiving plant zip code")
	fmt.Println("  -verbose           verbose progress output")
	fmt.Println("  -help              show this help")
}
