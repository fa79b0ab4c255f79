package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	HotelID     uint   `json:"hotelId"`
	Hotel       Hotel  `json:"-"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // whole currency units
	Image       string `json:"image"`
	Description string `json:"description"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
}
