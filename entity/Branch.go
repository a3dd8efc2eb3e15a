package entity

import (
	"gorm.io/gorm"
)

type Branch struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Users          []User          `json:"-"`
	MenuItems      []MenuItem      `json:"-"`
	InventoryItems []InventoryItem `json:"-"`
	Printers       []Printer       `json:"-"`
}
