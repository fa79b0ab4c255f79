package entity

import (
	"gorm.io/gorm"
)

// OrderStatus is a closed set. Pending is initial; Accepted and Rejected are
// what the admin surface sets; Delivered is valid but driven by no workflow.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAccepted  OrderStatus = "Accepted"
	StatusRejected  OrderStatus = "Rejected"
	StatusDelivered OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusDelivered:
		return true
	}
	return false
}

const (
	PaymentOnline = "Online"
	PaymentCOD    = "COD"
)

// Order is an immutable snapshot of everything at placement time; only
// Status may change afterwards. Invariant:
// Total = max(0, Subtotal + DeliveryFee + PlatformFee + Surcharge - Discount).
type Order struct {
	gorm.Model
	Code string `gorm:"size:32;uniqueIndex" json:"code"`

	UserID     uint   `json:"userId"`
	UserName   string `json:"userName"`
	UserMobile string `json:"userMobile"`

	HotelID   uint   `json:"hotelId"`
	HotelName string `json:"hotelName"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	PlatformFee int64 `json:"platformFee"`
	Surcharge   int64 `json:"surcharge"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	Address        string `json:"address"`
	DeliveryTime   string `json:"deliveryTime"`
	PaymentMethod  string `json:"paymentMethod"` // Online | COD
	TransactionRef string `json:"transactionRef,omitempty"`

	Status OrderStatus `gorm:"size:16;default:Pending" json:"status"`

	Items []OrderItem `json:"items"`
}
