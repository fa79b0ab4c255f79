package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/configs"
	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
	"github.com/satyasudipta98-dot/Foodie-we/services"
)

// testEnv wires repositories and services over an in-memory SQLite database,
// seeded with one user, one hotel and the default fee settings.
type testEnv struct {
	db *gorm.DB

	user  *entity.User
	hotel *entity.Hotel

	userRepo   *repository.UserRepository
	cartRepo   *repository.CartRepository
	orderRepo  *repository.OrderRepository
	couponRepo *repository.CouponRepository

	cartSvc   *services.CartService
	couponSvc *services.CouponService
	orderSvc  *services.OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "connect test database")
	require.NoError(t, configs.SetupDatabase(db), "auto-migrate")

	env := &testEnv{db: db}

	env.userRepo = repository.NewUserRepository(db)
	env.cartRepo = repository.NewCartRepository(db)
	env.orderRepo = repository.NewOrderRepository(db)
	env.couponRepo = repository.NewCouponRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	env.cartSvc = services.NewCartService(db, env.cartRepo, catalogRepo, settingsRepo)
	env.couponSvc = services.NewCouponService(env.couponRepo, env.cartRepo)
	env.orderSvc = services.NewOrderService(db, env.orderRepo, env.cartRepo, catalogRepo, settingsRepo)

	require.NoError(t, db.Create(&entity.Settings{
		AppName:     "Foodie We",
		DeliveryFee: 40,
		PlatformFee: 5,
		Surcharge:   0,
	}).Error)

	env.user = &entity.User{Name: "Asha", Mobile: "9000000001", Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(env.user).Error)

	env.hotel = &entity.Hotel{Name: "Spicy Treats", Description: "test hotel", IsOpen: true}
	require.NoError(t, db.Create(env.hotel).Error)

	return env
}

func (e *testEnv) addMenuItem(t *testing.T, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{HotelID: e.hotel.ID, Name: name, Price: price, IsAvailable: true}
	require.NoError(t, e.db.Create(m).Error)
	return m
}

func (e *testEnv) addCoupon(t *testing.T, code string, discount int64) *entity.Coupon {
	t.Helper()
	c := &entity.Coupon{Code: code, Discount: discount, Description: "test coupon"}
	require.NoError(t, e.couponRepo.Create(c))
	return c
}

func (e *testEnv) cart(t *testing.T) *entity.Cart {
	t.Helper()
	c, err := e.cartRepo.GetCartWithItems(e.user.ID)
	require.NoError(t, err)
	return c
}

func (e *testEnv) orderCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&entity.Order{}).Count(&count).Error)
	return count
}
