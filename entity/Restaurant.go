package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`

	Branches []Branch `json:"-"`
}
