package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	OrderType   string `gorm:"not null" json:"orderType"`
	Status      string `gorm:"not null;default:PENDING;index" json:"status"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Discount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`

	PaymentStatus string `gorm:"default:UNPAID;index" json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	// at least one of the two is required
	TableNumber  string `json:"tableNumber"`
	CustomerName string `json:"customerName"`
	Notes        string `json:"notes"`

	BranchID uint   `gorm:"index" json:"branchId"`
	Branch   Branch `json:"-"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `json:"-"`

	Items    []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `json:"-"`
}
