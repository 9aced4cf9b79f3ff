package dto

import (
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// SkippedPair records a material-supplier pair excluded from a batch run,
// typically because its configuration record is missing or invalid
type SkippedPair struct {
	MaterialID entities.MaterialID `json:"material_id"`
	SupplierID entities.VendorID   `json:"supplier_id"`
	Reason     string              `json:"reason"`
}

// BatchResult contains the complete output of a batch costing run
type BatchResult struct {
	RunID       string            `json:"run_id"`
	Results     []*costing.Result `json:"results"`
	Skipped     []SkippedPair     `json:"skipped,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
}

// PairCount returns the number of pairs the run attempted.
func (b *BatchResult) PairCount() int {
	return len(b.Results) + len(b.Skipped)
}
