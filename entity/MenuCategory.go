package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
