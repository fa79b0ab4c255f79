package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
	"github.com/satyasudipta98-dot/Foodie-we/services"
)

// AdminController is the administrative surface: order ledger management,
// dashboard stats, and CRUD over hotels, menu items, coupons, banners and
// the settings singleton.
type AdminController struct {
	OrderSvc *services.OrderService
	Catalog  *repository.CatalogRepository
	Coupons  *repository.CouponRepository
	Banners  *repository.BannerRepository
	Settings *repository.SettingsRepository
}

func NewAdminController(
	orderSvc *services.OrderService,
	cat *repository.CatalogRepository,
	coupons *repository.CouponRepository,
	banners *repository.BannerRepository,
	settings *repository.SettingsRepository,
) *AdminController {
	return &AdminController{
		OrderSvc: orderSvc,
		Catalog:  cat,
		Coupons:  coupons,
		Banners:  banners,
		Settings: settings,
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ---------------- Orders ----------------

// GET /admin/orders — the full ledger, newest first.
func (ac *AdminController) Orders(c *gin.Context) {
	orders, err := ac.OrderSvc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status — overwrite, no transition guard. An
// unknown order id is a no-op, reported as updated:false.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ac.OrderSvc.UpdateStatus(id, body.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": updated})
}

// GET /admin/orders/:id/summary — plain-text digest for forwarding.
func (ac *AdminController) OrderSummary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := ac.OrderSvc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"text": services.SummaryText(order)})
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.OrderSvc.Stats(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// ---------------- Hotels ----------------

type hotelIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

// POST /admin/hotels
func (ac *AdminController) CreateHotel(c *gin.Context) {
	var body hotelIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h := entity.Hotel{Name: body.Name, Description: body.Description, Image: body.Image, IsOpen: true}
	if err := ac.Catalog.CreateHotel(&h); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, h)
}

// PATCH /admin/hotels/:id/toggle
func (ac *AdminController) ToggleHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	toggled, err := ac.Catalog.ToggleHotelOpen(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"toggled": toggled})
}

// DELETE /admin/hotels/:id — no cascade to menu items.
func (ac *AdminController) DeleteHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Catalog.DeleteHotel(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Menu items ----------------

type menuItemIn struct {
	HotelID     uint   `json:"hotelId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// GET /admin/menu — the whole inventory across hotels.
func (ac *AdminController) MenuItems(c *gin.Context) {
	items, err := ac.Catalog.ListMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	var body menuItemIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.MenuItem{
		HotelID:     body.HotelID,
		Name:        body.Name,
		Price:       body.Price,
		Image:       body.Image,
		Description: body.Description,
		IsAvailable: true,
	}
	if err := ac.Catalog.CreateMenuItem(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /admin/menu/:id/toggle
func (ac *AdminController) ToggleMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	toggled, err := ac.Catalog.ToggleMenuItemAvailable(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"toggled": toggled})
}

// DELETE /admin/menu/:id — historical orders keep their copies.
func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Catalog.DeleteMenuItem(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Coupons ----------------

type couponIn struct {
	Code        string `json:"code" binding:"required"`
	Discount    int64  `json:"discount" binding:"min=0"`
	Description string `json:"description"`
}

// POST /admin/coupons
func (ac *AdminController) CreateCoupon(c *gin.Context) {
	var body couponIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cp := entity.Coupon{Code: body.Code, Discount: body.Discount, Description: body.Description}
	if err := ac.Coupons.Create(&cp); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cp)
}

// DELETE /admin/coupons/:id
func (ac *AdminController) DeleteCoupon(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Coupons.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Banners ----------------

type bannerIn struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Title    string `json:"title" binding:"required"`
}

// POST /admin/banners
func (ac *AdminController) CreateBanner(c *gin.Context) {
	var body bannerIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b := entity.Banner{ImageURL: body.ImageURL, Title: body.Title}
	if err := ac.Banners.Create(&b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

// DELETE /admin/banners/:id
func (ac *AdminController) DeleteBanner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ac.Banners.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Settings ----------------

// PUT /admin/settings — replaces the singleton's editable fields.
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var body struct {
		AppName       string   `json:"appName" binding:"required"`
		LogoURL       string   `json:"logoUrl"`
		DeliveryFee   int64    `json:"deliveryFee" binding:"min=0"`
		PlatformFee   int64    `json:"platformFee" binding:"min=0"`
		Surcharge     int64    `json:"surcharge" binding:"min=0"`
		AboutUs       string   `json:"aboutUs"`
		DeliveryTimes []string `json:"deliveryTimes"`
		RewardInfo    string   `json:"rewardInfo"`
		SupportLink   string   `json:"supportLink"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	s, err := ac.Settings.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	s.AppName = body.AppName
	s.LogoURL = body.LogoURL
	s.DeliveryFee = body.DeliveryFee
	s.PlatformFee = body.PlatformFee
	s.Surcharge = body.Surcharge
	s.AboutUs = body.AboutUs
	s.DeliveryTimes = body.DeliveryTimes
	s.RewardInfo = body.RewardInfo
	s.SupportLink = body.SupportLink

	if err := ac.Settings.Save(s); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
