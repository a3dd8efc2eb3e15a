package entity

import (
	"time"

	"gorm.io/gorm"
)

type Shift struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	BranchID uint   `gorm:"index" json:"branchId"`
	Branch   Branch `json:"-"`

	ClockIn  time.Time  `gorm:"not null" json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
	Minutes  int        `json:"minutes"`
	Notes    string     `json:"notes"`
}
