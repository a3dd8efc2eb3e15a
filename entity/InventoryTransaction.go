package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InventoryTxIncoming   = "INCOMING"
	InventoryTxOutgoing   = "OUTGOING"
	InventoryTxAdjustment = "ADJUSTMENT"
)

// InventoryTransaction is an append-only audit record. Rows are never
// updated or deleted.
type InventoryTransaction struct {
	gorm.Model
	Type             string          `gorm:"not null;index" json:"type"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	PreviousQuantity decimal.Decimal `gorm:"type:decimal(20,4)" json:"previousQuantity"`
	NewQuantity      decimal.Decimal `gorm:"type:decimal(20,4)" json:"newQuantity"`
	Reason           string          `json:"reason"`
	Reference        string          `gorm:"index" json:"reference"`

	InventoryItemID uint          `gorm:"index" json:"inventoryItemId"`
	InventoryItem   InventoryItem `json:"-"`

	BranchID uint `gorm:"index" json:"branchId"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `json:"-"`
}
