package entity

import (
	"gorm.io/gorm"
)

// CartItem snapshots the menu item's name and price at add time, so later
// catalog edits never reprice a cart line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	HotelID    uint   `json:"hotelId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"` // always >= 1; a line at 0 is deleted
}
