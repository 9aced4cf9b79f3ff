package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// The stores persist each record as a JSON payload next to its key columns.
// The engine never queries individual config fields, so a payload column keeps
// the schema stable while the config structs evolve.

// MaterialRepository provides SQLite-backed material storage
type MaterialRepository struct {
	conn *sql.DB
}

// NewMaterialRepository creates a material repository over an open database
func NewMaterialRepository(conn *sql.DB) *MaterialRepository {
	return &MaterialRepository{conn: conn}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// GetMaterial returns the material for an ID
func (r *MaterialRepository) GetMaterial(id entities.MaterialID) (*entities.Material, error) {
	var payload []byte
	err := r.conn.QueryRow(`SELECT payload FROM materials WHERE id = ?`, string(id)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("material not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query material %s: %w", id, err)
	}

	var m entities.Material
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("decode material %s: %w", id, err)
	}
	return &m, nil
}

// GetAllMaterials returns all materials ordered by ID
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	rows, err := r.conn.Query(`SELECT payload FROM materials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	var materials []*entities.Material
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		var m entities.Material
		if err := json.Unmarshal(payload, &m); err != nil {
			return nil, fmt.Errorf("decode material: %w", err)
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}

// SaveMaterial adds or replaces a material
func (r *MaterialRepository) SaveMaterial(material *entities.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(material)
	if err != nil {
		return fmt.Errorf("encode material %s: %w", material.ID, err)
	}

	_, err = r.conn.Exec(`
		INSERT INTO materials (id, description, payload, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT (id) DO UPDATE SET
			description = excluded.description,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(material.ID), material.Description, payload)
	if err != nil {
		return fmt.Errorf("save material %s: %w", material.ID, err)
	}
	return nil
}

// DeleteMaterial removes a material
func (r *MaterialRepository) DeleteMaterial(id entities.MaterialID) error {
	res, err := r.conn.Exec(`DELETE FROM materials WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete material %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("material not found: %s", id)
	}
	return nil
}

// SupplierRepository provides SQLite-backed supplier storage
type SupplierRepository struct {
	conn *sql.DB
}

// NewSupplierRepository creates a supplier repository over an open database
func NewSupplierRepository(conn *sql.DB) *SupplierRepository {
	return &SupplierRepository{conn: conn}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// GetSupplier returns the supplier for a vendor ID
func (r *SupplierRepository) GetSupplier(id entities.VendorID) (*entities.Supplier, error) {
	var payload []byte
	err := r.conn.QueryRow(`SELECT payload FROM suppliers WHERE id = ?`, string(id)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("supplier not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query supplier %s: %w", id, err)
	}

	var s entities.Supplier
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode supplier %s: %w", id, err)
	}
	return &s, nil
}

// GetAllSuppliers returns all suppliers ordered by vendor ID
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	rows, err := r.conn.Query(`SELECT payload FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entities.Supplier
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		var s entities.Supplier
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decode supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// SaveSupplier adds or replaces a supplier
func (r *SupplierRepository) SaveSupplier(supplier *entities.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(supplier)
	if err != nil {
		return fmt.Errorf("encode supplier %s: %w", supplier.ID, err)
	}

	_, err = r.conn.Exec(`
		INSERT INTO suppliers (id, name, payload, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(supplier.ID), supplier.Name, payload)
	if err != nil {
		return fmt.Errorf("save supplier %s: %w", supplier.ID, err)
	}
	return nil
}

// DeleteSupplier removes a supplier
func (r *SupplierRepository) DeleteSupplier(id entities.VendorID) error {
	res, err := r.conn.Exec(`DELETE FROM suppliers WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("supplier not found: %s", id)
	}
	return nil
}

// PairConfigRepository provides SQLite-backed pair config storage
type PairConfigRepository struct {
	conn *sql.DB
}

// NewPairConfigRepository creates a pair config repository over an open database
func NewPairConfigRepository(conn *sql.DB) *PairConfigRepository {
	return &PairConfigRepository{conn: conn}
}

// Verify interface compliance
var _ repositories.PairConfigRepository = (*PairConfigRepository)(nil)

// GetPairConfig returns the configuration record for a material-supplier pair
func (r *PairConfigRepository) GetPairConfig(materialID entities.MaterialID, supplierID entities.VendorID) (*entities.PairConfig, error) {
	var payload []byte
	err := r.conn.QueryRow(`
		SELECT payload FROM pair_configs WHERE material_id = ? AND supplier_id = ?
	`, string(materialID), string(supplierID)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pair config not found: %s / %s", materialID, supplierID)
	}
	if err != nil {
		return nil, fmt.Errorf("query pair config %s/%s: %w", materialID, supplierID, err)
	}

	var cfg entities.PairConfig
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("decode pair config %s/%s: %w", materialID, supplierID, err)
	}
	return &cfg, nil
}

// GetAllPairConfigs returns all pair configs ordered by material then supplier
func (r *PairConfigRepository) GetAllPairConfigs() ([]*entities.PairConfig, error) {
	rows, err := r.conn.Query(`SELECT payload FROM pair_configs ORDER BY material_id, supplier_id`)
	if err != nil {
		return nil, fmt.Errorf("query pair configs: %w", err)
	}
	defer rows.Close()

	var configs []*entities.PairConfig
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan pair config: %w", err)
		}
		var cfg entities.PairConfig
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return nil, fmt.Errorf("decode pair config: %w", err)
		}
		configs = append(configs, &cfg)
	}
	return configs, rows.Err()
}

// SavePairConfig adds or replaces a pair config
func (r *PairConfigRepository) SavePairConfig(config *entities.PairConfig) error {
	if config.MaterialID == "" || config.SupplierID == "" {
		return fmt.Errorf("pair config requires material and supplier IDs")
	}
	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode pair config %s/%s: %w", config.MaterialID, config.SupplierID, err)
	}

	_, err = r.conn.Exec(`
		INSERT INTO pair_configs (material_id, supplier_id, payload, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT (material_id, supplier_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(config.MaterialID), string(config.SupplierID), payload)
	if err != nil {
		return fmt.Errorf("save pair config %s/%s: %w", config.MaterialID, config.SupplierID, err)
	}
	return nil
}

// DeletePairConfig removes a pair config
func (r *PairConfigRepository) DeletePairConfig(materialID entities.MaterialID, supplierID entities.VendorID) error {
	res, err := r.conn.Exec(`
		DELETE FROM pair_configs WHERE material_id = ? AND supplier_id = ?
	`, string(materialID), string(supplierID))
	if err != nil {
		return fmt.Errorf("delete pair config %s/%s: %w", materialID, supplierID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pair config not found: %s / %s", materialID, supplierID)
	}
	return nil
}
