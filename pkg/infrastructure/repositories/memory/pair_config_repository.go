package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

type pairKey struct {
	materialID entities.MaterialID
	supplierID entities.VendorID
}

// PairConfigRepository provides in-memory storage for per-pair configuration
// records
type PairConfigRepository struct {
	mu      sync.RWMutex
	configs map[pairKey]entities.PairConfig
}

// NewPairConfigRepository creates an empty in-memory pair config repository
func NewPairConfigRepository() *PairConfigRepository {
	return &PairConfigRepository{
		configs: make(map[pairKey]entities.PairConfig),
	}
}

// Verify interface compliance
var _ repositories.PairConfigRepository = (*PairConfigRepository)(nil)

// GetPairConfig returns the configuration record for a material-supplier pair
func (r *PairConfigRepository) GetPairConfig(materialID entities.MaterialID, supplierID entities.VendorID) (*entities.PairConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, exists := r.configs[pairKey{materialID, supplierID}]
	if !exists {
		return nil, fmt.Errorf("pair config not found: %s / %s", materialID, supplierID)
	}
	return &cfg, nil
}

// GetAllPairConfigs returns all pair configs ordered by material then supplier
func (r *PairConfigRepository) GetAllPairConfigs() ([]*entities.PairConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]*entities.PairConfig, 0, len(r.configs))
	for key := range r.configs {
		cfg := r.configs[key]
		configs = append(configs, &cfg)
	}
	sort.Slice(configs, func(i, j int) bool {
		if configs[i].MaterialID != configs[j].MaterialID {
			return configs[i].MaterialID < configs[j].MaterialID
		}
		return configs[i].SupplierID < configs[j].SupplierID
	})
	return configs, nil
}

// SavePairConfig adds or replaces a pair config
func (r *PairConfigRepository) SavePairConfig(config *entities.PairConfig) error {
	if config.MaterialID == "" || config.SupplierID == "" {
		return fmt.Errorf("pair config requires material and supplier IDs")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[pairKey{config.MaterialID, config.SupplierID}] = *config
	return nil
}

// DeletePairConfig removes a pair config
func (r *PairConfigRepository) DeletePairConfig(materialID entities.MaterialID, supplierID entities.VendorID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{materialID, supplierID}
	if _, exists := r.configs[key]; !exists {
		return fmt.Errorf("pair config not found: %s / %s", materialID, supplierID)
	}
	delete(r.configs, key)
	return nil
}
