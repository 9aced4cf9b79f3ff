package output

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// reportData is the template context for the HTML report
type reportData struct {
	Batch       *dto.BatchResult
	GeneratedAt time.Time
	RunTime     time.Duration
}

// generateHTMLOutput renders the batch result as a standalone HTML report
func generateHTMLOutput(batch *dto.BatchResult, config Config) error {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "cost_results.html")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	data := reportData{
		Batch:       batch,
		GeneratedAt: time.Now(),
		RunTime:     config.RunTime,
	}
	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Report written to %s\n", filename)
	}
	return nil
}
