package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[entities.VendorID]entities.Supplier
}

// NewSupplierRepository creates an empty in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		suppliers: make(map[entities.VendorID]entities.Supplier),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// GetSupplier returns the supplier for a vendor ID
func (r *SupplierRepository) GetSupplier(id entities.VendorID) (*entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.suppliers[id]
	if !exists {
		return nil, fmt.Errorf("supplier not found: %s", id)
	}
	return &s, nil
}

// GetAllSuppliers returns all suppliers ordered by vendor ID
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]*entities.Supplier, 0, len(r.suppliers))
	for id := range r.suppliers {
		s := r.suppliers[id]
		suppliers = append(suppliers, &s)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].ID < suppliers[j].ID })
	return suppliers, nil
}

// SaveSupplier adds or replaces a supplier
func (r *SupplierRepository) SaveSupplier(supplier *entities.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = *supplier
	return nil
}

// DeleteSupplier removes a supplier
func (r *SupplierRepository) DeleteSupplier(id entities.VendorID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.suppliers[id]; !exists {
		return fmt.Errorf("supplier not found: %s", id)
	}
	delete(r.suppliers, id)
	return nil
}
