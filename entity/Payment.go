package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method         string          `gorm:"not null" json:"method"`
	TransactionRef string          `gorm:"uniqueIndex" json:"transactionRef"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `json:"-"`
}
