package entity

import (
	"gorm.io/gorm"
)

// Cart belongs to exactly one user. The applied coupon lives here, outside
// the items: a single optional reference, replaced on each apply.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	CouponID *uint   `json:"couponId,omitempty"`
	Coupon   *Coupon `json:"coupon,omitempty"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
