package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ModifierSnapshot is a denormalized copy of a selected modifier, stored
// on the order item so historical orders stay accurate after menu edits.
type ModifierSnapshot struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	// nullable so deleting a menu item does not orphan historical orders;
	// name and price below are snapshots taken at order time
	MenuItemID *uint     `json:"menuItemId"`
	MenuItem   *MenuItem `json:"-"`

	Name     string          `gorm:"not null" json:"name"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	TaxRate  decimal.Decimal `gorm:"type:decimal(5,2)" json:"taxRate"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`
	Notes    string          `json:"notes"`

	Modifiers []ModifierSnapshot `gorm:"serializer:json" json:"modifiers,omitempty"`
}
