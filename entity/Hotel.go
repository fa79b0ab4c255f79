package entity

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"` // opaque static URL
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	// No cascade: deleting a hotel leaves its menu items in place.
	MenuItems []MenuItem `json:"-"`
}
