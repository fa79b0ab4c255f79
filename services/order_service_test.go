package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/services"
)

func codReq() *services.PlaceOrderReq {
	return &services.PlaceOrderReq{
		Address:       "12 MG Road",
		DeliveryTime:  "30-45 mins",
		PaymentMethod: entity.PaymentCOD,
	}
}

func TestPlaceOrderCOD(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Paneer Butter Masala", 220)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))

	order, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	assert.Equal(t, int64(1), env.orderCount(t))
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.NotEmpty(t, order.Code)
	assert.Equal(t, env.user.Name, order.UserName)
	assert.Equal(t, env.hotel.Name, order.HotelName)
	assert.Equal(t, int64(220), order.Subtotal)
	assert.Equal(t, int64(220+40+5), order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, item.ID, order.Items[0].MenuItemID)

	// the cart is emptied in the same transaction
	assert.Empty(t, env.cart(t).Items)
}

func TestPlaceOrderConsumesCoupon(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Paneer Butter Masala", 220)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	env.addCoupon(t, "WELCOME50", 50)
	_, err := env.couponSvc.Apply(env.user.ID, "WELCOME50")
	require.NoError(t, err)

	order, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	assert.Equal(t, int64(50), order.Discount)
	assert.Equal(t, int64(220+40+5-50), order.Total)
	assert.Nil(t, env.cart(t).CouponID)
}

func TestPlaceOrderRejectsEmptyAddress(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))

	req := codReq()
	req.Address = "   "
	_, err := env.orderSvc.Place(env.user, req)
	assert.ErrorIs(t, err, services.ErrAddressRequired)

	// ledger unchanged, cart untouched
	assert.Equal(t, int64(0), env.orderCount(t))
	assert.Len(t, env.cart(t).Items, 1)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orderSvc.Place(env.user, codReq())
	assert.ErrorIs(t, err, services.ErrCartEmpty)
	assert.Equal(t, int64(0), env.orderCount(t))
}

func TestPlaceOrderOnlineRequiresTransactionRef(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))

	req := codReq()
	req.PaymentMethod = entity.PaymentOnline
	req.TransactionRef = "123"
	_, err := env.orderSvc.Place(env.user, req)
	assert.ErrorIs(t, err, services.ErrShortTransaction)
	assert.Equal(t, int64(0), env.orderCount(t))

	req.TransactionRef = "1234"
	order, err := env.orderSvc.Place(env.user, req)
	require.NoError(t, err)
	assert.Equal(t, "1234", order.TransactionRef)
}

func TestUpdateStatusOverwritesOnlyTarget(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)

	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	first, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	second, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	updated, err := env.orderSvc.UpdateStatus(first.ID, entity.StatusAccepted)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := env.orderSvc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, got.Status)

	other, err := env.orderSvc.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, other.Status)
}

func TestUpdateStatusUnknownOrderIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.orderSvc.UpdateStatus(424242, entity.StatusAccepted)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orderSvc.UpdateStatus(1, entity.OrderStatus("Shipped"))
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestListForUserNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)

	var codes []string
	for i := 0; i < 3; i++ {
		require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
		o, err := env.orderSvc.Place(env.user, codReq())
		require.NoError(t, err)
		codes = append(codes, o.Code)
	}

	orders, err := env.orderSvc.ListForUser(env.user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, codes[2], orders[0].Code)
	assert.Equal(t, codes[0], orders[2].Code)
}

func TestStatsRevenueExcludesRejected(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Classic Cheese Burger", 150)

	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	kept, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	rejected, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)
	_, err = env.orderSvc.UpdateStatus(rejected.ID, entity.StatusRejected)
	require.NoError(t, err)

	stats, err := env.orderSvc.Stats(time.Now())
	require.NoError(t, err)
	assert.Equal(t, kept.Total, stats.Revenue)
	assert.Equal(t, int64(2), stats.TodayOrders)
}

func TestStatsTodayCountsCalendarDay(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))
	order, err := env.orderSvc.Place(env.user, codReq())
	require.NoError(t, err)

	// backdate the order; it must leave today's count
	require.NoError(t, env.db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("created_at", time.Now().AddDate(0, 0, -2)).Error)

	stats, err := env.orderSvc.Stats(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TodayOrders)
	assert.Equal(t, order.Total, stats.Revenue)
}

func TestSummaryText(t *testing.T) {
	env := newTestEnv(t)
	item := env.addMenuItem(t, "Garlic Naan", 45)
	require.NoError(t, env.cartSvc.Add(env.user.ID, item.ID))

	req := codReq()
	req.PaymentMethod = entity.PaymentOnline
	req.TransactionRef = "9876"
	order, err := env.orderSvc.Place(env.user, req)
	require.NoError(t, err)

	text := services.SummaryText(order)
	assert.Contains(t, text, order.Code)
	assert.Contains(t, text, "1x Garlic Naan")
	assert.Contains(t, text, "12 MG Road")
	assert.Contains(t, text, "(Tx: 9876)")
}
