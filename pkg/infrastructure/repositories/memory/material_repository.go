package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material storage. Unlike the
// reference tables it is mutated by the configuration layer at runtime, so
// access is guarded by a read-write mutex.
type MaterialRepository struct {
	mu        sync.RWMutex
	materials map[entities.MaterialID]entities.Material
}

// NewMaterialRepository creates an empty in-memory material repository
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{
		materials: make(map[entities.MaterialID]entities.Material),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// GetMaterial returns the material for an ID
func (r *MaterialRepository) GetMaterial(id entities.MaterialID) (*entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.materials[id]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", id)
	}
	return &m, nil
}

// GetAllMaterials returns all materials ordered by ID
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := make([]*entities.Material, 0, len(r.materials))
	for id := range r.materials {
		m := r.materials[id]
		materials = append(materials, &m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return materials, nil
}

// SaveMaterial adds or replaces a material
func (r *MaterialRepository) SaveMaterial(material *entities.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials[material.ID] = *material
	return nil
}

// DeleteMaterial removes a material
func (r *MaterialRepository) DeleteMaterial(id entities.MaterialID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.materials[id]; !exists {
		return fmt.Errorf("material not found: %s", id)
	}
	delete(r.materials, id)
	return nil
}
