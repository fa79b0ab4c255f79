package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/services"
)

func feeSettings(delivery, platform, surcharge int64) *entity.Settings {
	return &entity.Settings{DeliveryFee: delivery, PlatformFee: platform, Surcharge: surcharge}
}

func TestSubtotal(t *testing.T) {
	items := []entity.CartItem{
		{Name: "Paneer Butter Masala", UnitPrice: 220, Qty: 2},
		{Name: "Garlic Naan", UnitPrice: 45, Qty: 3},
	}
	assert.Equal(t, int64(220*2+45*3), services.Subtotal(items))
	assert.Equal(t, int64(0), services.Subtotal(nil))
}

func TestQuoteBreakdown(t *testing.T) {
	// cart = [{price 100, qty 2}], fees 40/5/0, coupon 50 -> total 195
	items := []entity.CartItem{{Name: "A", UnitPrice: 100, Qty: 2}}
	coupon := &entity.Coupon{Code: "FLAT50", Discount: 50}

	q := services.Quote(items, feeSettings(40, 5, 0), coupon)

	assert.Equal(t, int64(200), q.Subtotal)
	assert.Equal(t, int64(40), q.DeliveryFee)
	assert.Equal(t, int64(5), q.PlatformFee)
	assert.Equal(t, int64(0), q.Surcharge)
	assert.Equal(t, int64(50), q.Discount)
	assert.Equal(t, int64(195), q.Total)
}

func TestQuoteFloorsAtZero(t *testing.T) {
	// A coupon can make the order free, never negative.
	items := []entity.CartItem{{Name: "A", UnitPrice: 100, Qty: 2}}
	coupon := &entity.Coupon{Code: "MEGA", Discount: 500}

	q := services.Quote(items, feeSettings(40, 5, 0), coupon)

	assert.Equal(t, int64(200), q.Subtotal)
	assert.Equal(t, int64(0), q.Total)
}

func TestQuoteWithoutCoupon(t *testing.T) {
	items := []entity.CartItem{{Name: "A", UnitPrice: 150, Qty: 1}}

	q := services.Quote(items, feeSettings(40, 5, 10), nil)

	assert.Equal(t, int64(0), q.Discount)
	assert.Equal(t, int64(205), q.Total)
}

func TestQuoteMonotonicInDiscount(t *testing.T) {
	items := []entity.CartItem{{Name: "A", UnitPrice: 120, Qty: 2}}
	settings := feeSettings(40, 5, 0)

	prev := services.Quote(items, settings, nil).Total
	for _, discount := range []int64{10, 50, 100, 284, 285, 1000} {
		q := services.Quote(items, settings, &entity.Coupon{Discount: discount})
		assert.LessOrEqual(t, q.Total, prev, "total must not increase with discount %d", discount)
		assert.GreaterOrEqual(t, q.Total, int64(0))
		prev = q.Total
	}
}
