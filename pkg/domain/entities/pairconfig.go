package entities

// PairConfig bundles the configuration records for one material-supplier pair.
// The configuration layer assembles it; the cost engine consumes it read-only.
type PairConfig struct {
	MaterialID MaterialID       `json:"material_id"`
	SupplierID VendorID         `json:"supplier_id"`
	Packaging  PackagingConfig  `json:"packaging"`
	Transport  TransportConfig  `json:"transport"`
	Operations OperationsConfig `json:"operations"`
	Warehouse  WarehouseConfig  `json:"warehouse"`
	CO2        CO2Config        `json:"co2"`
	Customs    CustomsConfig    `json:"customs"`
	Repacking  RepackingConfig  `json:"repacking"`
	Additional []AdditionalCost `json:"additional"`
}
