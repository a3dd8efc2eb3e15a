package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItemIngredient links a menu item to the stock it consumes:
// QuantityPerUnit of the inventory item is deducted per ordered unit.
type MenuItemIngredient struct {
	gorm.Model
	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	InventoryItemID uint          `gorm:"index" json:"inventoryItemId"`
	InventoryItem   InventoryItem `json:"inventoryItem,omitempty"`

	QuantityPerUnit decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantityPerUnit"`
}
