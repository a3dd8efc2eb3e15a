package entity

import (
	"gorm.io/gorm"
)

const (
	PrinterTypeReceipt = "RECEIPT"
	PrinterTypeKitchen = "KITCHEN"
)

type Printer struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Type    string `gorm:"not null" json:"type"`
	Address string `json:"address"`
	// no column defaults: a default:true tag would make GORM skip a
	// literal false on insert
	Active bool `json:"active"`
	Online bool `json:"online"`

	BranchID uint   `gorm:"index" json:"branchId"`
	Branch   Branch `json:"-"`

	// kitchen printers only: null = catch-all, receives every category
	CategoryID *uint         `json:"categoryId"`
	Category   *MenuCategory `json:"-"`

	Jobs []PrintJob `json:"-"`
}
