package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

// SeedAdmin creates the admin user once, from env credentials.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminMobile == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_MOBILE/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("mobile = ?", cfg.AdminMobile).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Mobile:   cfg.AdminMobile,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDefaults fills empty collections with the default dataset. A collection
// that has ever been written (even if later emptied row by row through the
// admin surface, the table keeps soft-deleted rows) is left alone.
func SeedDefaults(db *gorm.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedCoupons(db); err != nil {
		return err
	}
	return seedBanners(db)
}

func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&entity.Settings{
		AppName:       "Foodie We",
		LogoURL:       "https://picsum.photos/200/200?random=1",
		DeliveryFee:   40,
		PlatformFee:   5,
		Surcharge:     0,
		AboutUs:       "Foodie We is your premium neighborhood food delivery companion. We connect you with the best local hotels to bring delicious flavors right to your doorstep.",
		DeliveryTimes: []string{"30-45 mins", "45-60 mins", "ASAP"},
		RewardInfo:    "Earn 10 points for every ₹100 spent! Redeem points for exclusive discounts on your future orders.",
	}).Error
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Unscoped().Model(&entity.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	spicy := entity.Hotel{
		Name:        "Spicy Treats",
		Description: "Best North Indian and Mughlai dishes in town.",
		Image:       "https://picsum.photos/400/300?random=11",
		IsOpen:      true,
	}
	burger := entity.Hotel{
		Name:        "Burger Hub",
		Description: "Juicy burgers and crispy fries.",
		Image:       "https://picsum.photos/400/300?random=12",
		IsOpen:      true,
	}
	if err := db.Create(&spicy).Error; err != nil {
		return err
	}
	if err := db.Create(&burger).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{
			HotelID:     spicy.ID,
			Name:        "Paneer Butter Masala",
			Price:       220,
			Image:       "https://picsum.photos/200/200?random=21",
			Description: "Creamy cottage cheese cubes in rich tomato gravy.",
			IsAvailable: true,
		},
		{
			HotelID:     spicy.ID,
			Name:        "Garlic Naan",
			Price:       45,
			Image:       "https://picsum.photos/200/200?random=22",
			Description: "Soft leavened bread topped with garlic.",
			IsAvailable: true,
		},
		{
			HotelID:     burger.ID,
			Name:        "Classic Cheese Burger",
			Price:       150,
			Image:       "https://picsum.photos/200/200?random=23",
			Description: "Grilled patty with melted cheese and fresh veggies.",
			IsAvailable: true,
		},
	}
	return db.Create(&menu).Error
}

func seedCoupons(db *gorm.DB) error {
	var count int64
	if err := db.Unscoped().Model(&entity.Coupon{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	coupons := []entity.Coupon{
		{Code: "WELCOME50", Discount: 50, Description: "Flat ₹50 off on your first order!"},
		{Code: "FOODIE20", Discount: 20, Description: "Extra ₹20 off for all users."},
	}
	return db.Create(&coupons).Error
}

func seedBanners(db *gorm.DB) error {
	var count int64
	if err := db.Unscoped().Model(&entity.Banner{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	banners := []entity.Banner{
		{ImageURL: "https://picsum.photos/800/400?random=31", Title: "Weekend Specials"},
		{ImageURL: "https://picsum.photos/800/400?random=32", Title: "Free Delivery over ₹500"},
	}
	return db.Create(&banners).Error
}
