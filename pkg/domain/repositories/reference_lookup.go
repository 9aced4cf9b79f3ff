package repositories

import (
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// PackagingCatalog provides read-only access to the box, tray, pallet and
// additional packaging reference tables. Implementations must be safe for
// concurrent reads; the cost engine never mutates them.
type PackagingCatalog interface {
	StandardBox(name entities.BoxType) (*entities.StandardBox, error)
	Tray(variant entities.SpecialPackagingVariant) (*entities.TrayItem, error)
	Pallet(name entities.PalletType) (*entities.PalletAccessory, error)
	AdditionalItem(name string) (*entities.AdditionalPackagingItem, error)
}

// RepackingTable provides read-only access to the weight-bracketed repacking
// operation price table.
type RepackingTable interface {
	OperationCost(weightCategory, supplierPackaging, destinationPackaging string) (*entities.RepackingOperation, error)
}

// TransportLaneTable provides read-only access to the transport lane price
// table. FindLane matches origin and destination by country plus two-digit
// zip prefix.
type TransportLaneTable interface {
	FindLane(originCountry, originZip, destCountry, destZip string) (*entities.TransportLane, error)
	GetAllLanes() ([]*entities.TransportLane, error)
}
