package memory

import (
	"fmt"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// PackagingCatalog provides in-memory packaging reference tables
type PackagingCatalog struct {
	boxes      map[entities.BoxType]entities.StandardBox
	trays      map[entities.SpecialPackagingVariant]entities.TrayItem
	pallets    map[entities.PalletType]entities.PalletAccessory
	additional map[string]entities.AdditionalPackagingItem
}

// NewPackagingCatalog creates an empty in-memory packaging catalog
func NewPackagingCatalog() *PackagingCatalog {
	return &PackagingCatalog{
		boxes:      make(map[entities.BoxType]entities.StandardBox),
		trays:      make(map[entities.SpecialPackagingVariant]entities.TrayItem),
		pallets:    make(map[entities.PalletType]entities.PalletAccessory),
		additional: make(map[string]entities.AdditionalPackagingItem),
	}
}

// Verify interface compliance
var _ repositories.PackagingCatalog = (*PackagingCatalog)(nil)

// AddStandardBox adds or replaces a standard box catalog entry
func (c *PackagingCatalog) AddStandardBox(box entities.StandardBox) {
	c.boxes[box.Name] = box
}

// AddTray adds or replaces a special packaging tray entry
func (c *PackagingCatalog) AddTray(tray entities.TrayItem) {
	c.trays[tray.Variant] = tray
}

// AddPallet adds or replaces a pallet accessory entry
func (c *PackagingCatalog) AddPallet(pallet entities.PalletAccessory) {
	c.pallets[pallet.Name] = pallet
}

// AddAdditionalItem adds or replaces an additional packaging entry
func (c *PackagingCatalog) AddAdditionalItem(item entities.AdditionalPackagingItem) {
	c.additional[item.Name] = item
}

// StandardBox returns the standard box entry for a box type
func (c *PackagingCatalog) StandardBox(name entities.BoxType) (*entities.StandardBox, error) {
	box, exists := c.boxes[name]
	if !exists {
		return nil, fmt.Errorf("standard box not found: %s", name)
	}
	return &box, nil
}

// Tray returns the tray entry for a special packaging variant
func (c *PackagingCatalog) Tray(variant entities.SpecialPackagingVariant) (*entities.TrayItem, error) {
	tray, exists := c.trays[variant]
	if !exists {
		return nil, fmt.Errorf("tray not found for variant: %s", variant)
	}
	return &tray, nil
}

// Pallet returns the pallet accessory entry for a pallet type
func (c *PackagingCatalog) Pallet(name entities.PalletType) (*entities.PalletAccessory, error) {
	pallet, exists := c.pallets[name]
	if !exists {
		return nil, fmt.Errorf("pallet not found: %s", name)
	}
	return &pallet, nil
}

// AdditionalItem returns the additional packaging entry for a name
func (c *PackagingCatalog) AdditionalItem(name string) (*entities.AdditionalPackagingItem, error) {
	item, exists := c.additional[name]
	if !exists {
		return nil, fmt.Errorf("additional packaging item not found: %s", name)
	}
	return &item, nil
}
