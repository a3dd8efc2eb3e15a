package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StockStatusIn  = "IN_STOCK"
	StockStatusLow = "LOW_STOCK"
	StockStatusOut = "OUT_OF_STOCK"
)

type InventoryItem struct {
	gorm.Model
	Name        string          `gorm:"not null;index" json:"name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	MinStock    decimal.Decimal `gorm:"type:decimal(20,4)" json:"minStock"`
	Status      string          `gorm:"default:IN_STOCK" json:"status"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`

	BranchID uint   `gorm:"index" json:"branchId"`
	Branch   Branch `json:"-"`

	Transactions []InventoryTransaction `json:"-"`
}

// ResolveStockStatus derives the status field from quantity and minStock.
// Every write path that changes Quantity must call this in the same
// transaction.
func ResolveStockStatus(quantity, minStock decimal.Decimal) string {
	switch {
	case quantity.LessThanOrEqual(decimal.Zero):
		return StockStatusOut
	case quantity.LessThanOrEqual(minStock):
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
