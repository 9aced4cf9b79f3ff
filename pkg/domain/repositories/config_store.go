package repositories

import (
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// MaterialRepository provides access to material master data
type MaterialRepository interface {
	GetMaterial(id entities.MaterialID) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	SaveMaterial(material *entities.Material) error
	DeleteMaterial(id entities.MaterialID) error
}

// SupplierRepository provides access to supplier master data
type SupplierRepository interface {
	GetSupplier(id entities.VendorID) (*entities.Supplier, error)
	GetAllSuppliers() ([]*entities.Supplier, error)
	SaveSupplier(supplier *entities.Supplier) error
	DeleteSupplier(id entities.VendorID) error
}

// PairConfigRepository provides access to the per-pair configuration records.
// Selecting the record set for a material-supplier pair happens here, outside
// the cost engine.
type PairConfigRepository interface {
	GetPairConfig(materialID entities.MaterialID, supplierID entities.VendorID) (*entities.PairConfig, error)
	GetAllPairConfigs() ([]*entities.PairConfig, error)
	SavePairConfig(config *entities.PairConfig) error
	DeletePairConfig(materialID entities.MaterialID, supplierID entities.VendorID) error
}
