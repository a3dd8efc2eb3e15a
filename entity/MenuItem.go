package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2)" json:"taxRate"`
	TaxExempt   bool            `gorm:"default:false" json:"taxExempt"`
	Active      bool            `json:"active"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `json:"-"`

	// null = available at every branch
	BranchID *uint   `json:"branchId"`
	Branch   *Branch `json:"-"`

	Ingredients []MenuItemIngredient `json:"ingredients,omitempty"`
	Modifiers   []Modifier           `gorm:"many2many:menu_item_modifiers;" json:"modifiers,omitempty"`
	OrderItems  []OrderItem          `json:"-"`
}
