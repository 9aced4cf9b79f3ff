package memory

import (
	"fmt"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

type repackingKey struct {
	weightCategory       string
	supplierPackaging    string
	destinationPackaging string
}

// RepackingTable provides the in-memory repacking operation price table
type RepackingTable struct {
	operations map[repackingKey]entities.RepackingOperation
}

// NewRepackingTable creates an empty in-memory repacking table
func NewRepackingTable() *RepackingTable {
	return &RepackingTable{
		operations: make(map[repackingKey]entities.RepackingOperation),
	}
}

// Verify interface compliance
var _ repositories.RepackingTable = (*RepackingTable)(nil)

// AddOperation adds or replaces a repacking operation row
func (t *RepackingTable) AddOperation(op entities.RepackingOperation) {
	key := repackingKey{
		weightCategory:       op.WeightCategory,
		supplierPackaging:    op.SupplierPackaging,
		destinationPackaging: op.DestinationPackaging,
	}
	t.operations[key] = op
}

// OperationCost returns the operation row for a weight category and packaging pair
func (t *RepackingTable) OperationCost(weightCategory, supplierPackaging, destinationPackaging string) (*entities.RepackingOperation, error) {
	key := repackingKey{
		weightCategory:       weightCategory,
		supplierPackaging:    supplierPackaging,
		destinationPackaging: destinationPackaging,
	}
	op, exists := t.operations[key]
	if !exists {
		return nil, fmt.Errorf("repacking operation not found: %s / %s -> %s",
			weightCategory, supplierPackaging, destinationPackaging)
	}
	return &op, nil
}
