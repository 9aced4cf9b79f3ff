package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
)

func sampleBatch() *dto.BatchResult {
	return &dto.BatchResult{
		RunID: "run-1",
		Results: []*costing.Result{
			{
				MaterialID:            "M-1001",
				SupplierID:            "V-2001",
				PackagingCostPerPiece: decimal.RequireFromString("0.001"),
				TransportCostPerPiece: decimal.RequireFromString("0.5"),
				TotalCostPerPiece:     decimal.RequireFromString("0.511"),
				TotalAnnualCost:       decimal.RequireFromString("61320"),
			},
		},
		Skipped: []dto.SkippedPair{
			{MaterialID: "M-9999", SupplierID: "V-2001", Reason: "material not found: M-9999"},
		},
	}
}

func TestGenerateTextOutput(t *testing.T) {
	var sb strings.Builder
	if err := generateTextOutput(&sb, sampleBatch(), Config{Format: "text"}); err != nil {
		t.Fatalf("generateTextOutput failed: %v", err)
	}

	out := sb.String()
	for _, want := range []string{"run-1", "M-1001", "0.511", "61320", "M-9999", "1 calculated, 1 skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestGenerateJSONOutput(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(sampleBatch(), Config{Format: "json", OutputDir: dir}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cost_results.json"))
	if err != nil {
		t.Fatalf("reading results: %v", err)
	}
	var decoded dto.BatchResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding results: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].MaterialID != "M-1001" {
		t.Errorf("unexpected decoded batch: %+v", decoded)
	}
}

func TestGenerateCSVOutput(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(sampleBatch(), Config{Format: "csv", OutputDir: dir}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "cost_results.csv"))
	if err != nil {
		t.Fatalf("opening results: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	if records[0][0] != "material_id" {
		t.Errorf("unexpected header start: %s", records[0][0])
	}
	if records[1][0] != "M-1001" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestGenerateHTMLOutput(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(sampleBatch(), Config{Format: "html", OutputDir: dir}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cost_results.html"))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	out := string(data)
	for _, want := range []string{"<title>Logistics Cost Report</title>", "run-1", "M-1001", "0.511", "61320", "M-9999"} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q", want)
		}
	}
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	if err := Generate(sampleBatch(), Config{Format: "xml"}); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
