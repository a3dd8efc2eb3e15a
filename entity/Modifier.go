package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Modifier struct {
	gorm.Model
	Name   string          `gorm:"not null" json:"name"`
	Price  decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Active bool            `json:"active"`

	MenuItems   []MenuItem           `gorm:"many2many:menu_item_modifiers;" json:"-"`
	Ingredients []ModifierIngredient `json:"ingredients,omitempty"`
}

// ModifierIngredient mirrors MenuItemIngredient for add-ons that consume
// stock of their own (e.g. extra cheese).
type ModifierIngredient struct {
	gorm.Model
	ModifierID uint     `gorm:"index" json:"modifierId"`
	Modifier   Modifier `json:"-"`

	InventoryItemID uint          `gorm:"index" json:"inventoryItemId"`
	InventoryItem   InventoryItem `json:"inventoryItem,omitempty"`

	QuantityPerUnit decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantityPerUnit"`
}
