package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleKitchenStaff = "kitchen_staff"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:kitchen_staff" json:"role"`

	// null for admins, who are not bound to a single branch
	BranchID *uint   `json:"branchId"`
	Branch   *Branch `json:"-"`

	Orders []Order `gorm:"foreignKey:CreatedByID" json:"-"`
	Shifts []Shift `json:"-"`
}
