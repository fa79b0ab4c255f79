package services

import (
	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

// PriceQuote is the full breakdown for a cart. It is what gets frozen onto
// an order at placement.
type PriceQuote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	PlatformFee int64 `json:"platformFee"`
	Surcharge   int64 `json:"surcharge"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// Subtotal sums price × quantity over the cart lines. Whole currency units,
// no rounding.
func Subtotal(items []entity.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.UnitPrice * int64(it.Qty)
	}
	return sum
}

// Quote derives the breakdown from cart, settings and the optional applied
// coupon. The total is floored at zero: a coupon can make an order free,
// never negative.
func Quote(items []entity.CartItem, settings *entity.Settings, coupon *entity.Coupon) PriceQuote {
	q := PriceQuote{
		Subtotal:    Subtotal(items),
		DeliveryFee: settings.DeliveryFee,
		PlatformFee: settings.PlatformFee,
		Surcharge:   settings.Surcharge,
	}
	if coupon != nil {
		q.Discount = coupon.Discount
	}

	total := q.Subtotal + q.DeliveryFee + q.PlatformFee + q.Surcharge - q.Discount
	if total < 0 {
		total = 0
	}
	q.Total = total
	return q
}
