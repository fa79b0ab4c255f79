package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/configs"
	"github.com/satyasudipta98-dot/Foodie-we/controllers"
	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/middlewares"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
	"github.com/satyasudipta98-dot/Foodie-we/services"
	"github.com/satyasudipta98-dot/Foodie-we/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Live admin feed
	feed := ws.NewOrderFeedHub()
	go feed.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, settingsRepo)
	couponSvc := services.NewCouponService(couponRepo, cartRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, settingsRepo)
	orderSvc.Events = feed

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cartSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo, bannerRepo, settingsRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, authSvc)
	paymentCtrl := controllers.NewPaymentController(cartSvc, cfg)
	adminCtrl := controllers.NewAdminController(orderSvc, catalogRepo, couponRepo, bannerRepo, settingsRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Public storefront reads
	r.GET("/hotels", catalogCtrl.Hotels)
	r.GET("/hotels/:id/menu", catalogCtrl.Menu)
	r.GET("/banners", catalogCtrl.BannerList)
	r.GET("/settings", catalogCtrl.GetSettings)
	r.GET("/coupons", couponCtrl.List)

	// Cart & checkout (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.ChangeQty)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/cart/coupon", couponCtrl.Apply)
		u.DELETE("/cart/coupon", couponCtrl.Remove)

		u.GET("/payment/request", paymentCtrl.Request)

		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/orders", adminCtrl.Orders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.GET("/orders/:id/summary", adminCtrl.OrderSummary)

		admin.POST("/hotels", adminCtrl.CreateHotel)
		admin.PATCH("/hotels/:id/toggle", adminCtrl.ToggleHotel)
		admin.DELETE("/hotels/:id", adminCtrl.DeleteHotel)

		admin.GET("/menu", adminCtrl.MenuItems)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu/:id/toggle", adminCtrl.ToggleMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)

		admin.POST("/coupons", adminCtrl.CreateCoupon)
		admin.DELETE("/coupons/:id", adminCtrl.DeleteCoupon)

		admin.POST("/banners", adminCtrl.CreateBanner)
		admin.DELETE("/banners/:id", adminCtrl.DeleteBanner)

		admin.PUT("/settings", adminCtrl.UpdateSettings)
	}

	// Live order feed for the admin dashboard (token via query string)
	r.GET("/ws/admin/orders",
		middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RoleAdmin),
		feed.HandleWebSocket)
}
