package entity

import (
	"gorm.io/gorm"
)

// Coupon is a flat-amount discount code. Codes are matched
// case-insensitively; any matching code applies, with no expiry,
// minimum-order or per-user limit.
type Coupon struct {
	gorm.Model
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Discount    int64  `json:"discount"`
	Description string `json:"description"`
}
