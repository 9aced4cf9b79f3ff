package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// SnapshotVersion is the current snapshot file format version
const SnapshotVersion = 1

// Snapshot is the on-disk form of the complete configuration state: master
// data plus the per-pair configuration records
type Snapshot struct {
	Version     int                   `json:"version"`
	SavedAt     time.Time             `json:"saved_at"`
	Materials   []entities.Material   `json:"materials"`
	Suppliers   []entities.Supplier   `json:"suppliers"`
	PairConfigs []entities.PairConfig `json:"pair_configs"`
}

// Capture collects the full configuration state from the given repositories
func Capture(
	materials repositories.MaterialRepository,
	suppliers repositories.SupplierRepository,
	pairs repositories.PairConfigRepository,
) (*Snapshot, error) {
	s := &Snapshot{Version: SnapshotVersion, SavedAt: time.Now()}

	ms, err := materials.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to collect materials: %w", err)
	}
	for _, m := range ms {
		s.Materials = append(s.Materials, *m)
	}

	vs, err := suppliers.GetAllSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to collect suppliers: %w", err)
	}
	for _, v := range vs {
		s.Suppliers = append(s.Suppliers, *v)
	}

	cs, err := pairs.GetAllPairConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to collect pair configs: %w", err)
	}
	for _, c := range cs {
		s.PairConfigs = append(s.PairConfigs, *c)
	}

	return s, nil
}

// Apply loads the snapshot contents into the given repositories. Existing
// records with the same keys are replaced.
func (s *Snapshot) Apply(
	materials repositories.MaterialRepository,
	suppliers repositories.SupplierRepository,
	pairs repositories.PairConfigRepository,
) error {
	for i := range s.Materials {
		if err := materials.SaveMaterial(&s.Materials[i]); err != nil {
			return fmt.Errorf("failed to restore material %s: %w", s.Materials[i].ID, err)
		}
	}
	for i := range s.Suppliers {
		if err := suppliers.SaveSupplier(&s.Suppliers[i]); err != nil {
			return fmt.Errorf("failed to restore supplier %s: %w", s.Suppliers[i].ID, err)
		}
	}
	for i := range s.PairConfigs {
		if err := pairs.SavePairConfig(&s.PairConfigs[i]); err != nil {
			return fmt.Errorf("failed to restore pair config %s/%s: %w",
				s.PairConfigs[i].MaterialID, s.PairConfigs[i].SupplierID, err)
		}
	}
	return nil
}

// Save writes the snapshot to filename. The file is written to a temp file
// first and renamed into place, so a crash never leaves a half-written
// snapshot behind.
func (s *Snapshot) Save(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// Load reads a snapshot from filename
func Load(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", filename, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", filename, err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d in %s", s.Version, filename)
	}
	return &s, nil
}
