package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		snapshotFile = flag.String(
			"snapshot",
			"",
			"Path to a JSON configuration snapshot",
		)
		lanesFile    = flag.String("lanes", "", "Path to a CSV transport lane rate sheet (optional)")
		materialID   = flag.String("material", "", "Calculate a single material (requires -supplier)")
		supplierID   = flag.String("supplier", "", "Calculate a single supplier (requires -material)")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json, csv, html")
		workers      = flag.Int("workers", 4, "Number of concurrent pair calculations")
		plantName    = flag.String("plant-name", "Plant", "Name of the receiving plant")
		plantCountry = flag.String("plant-country", "DE", "Country code of the receiving plant")
		plantZip     = flag.String("plant-zip", "38", "Zip code of the receiving plant")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		SnapshotFile: *snapshotFile,
		LanesFile:    *lanesFile,
		MaterialID:   *materialID,
		SupplierID:   *supplierID,
		OutputDir:    *outputDir,
		Format:       *format,
		Workers:      *workers,
		PlantName:    *plantName,
		PlantCountry: *plantCountry,
		PlantZip:     *plantZip,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewCalculateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
