package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of a cart line. It keeps its own name and
// price, so deleting the menu item later cannot touch historical orders.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"qty"`
	Total      int64  `json:"total"`
}
