package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
)

// CatalogController serves the public storefront reads: hotels, menus,
// banners, settings.
type CatalogController struct {
	Catalog  *repository.CatalogRepository
	Banners  *repository.BannerRepository
	Settings *repository.SettingsRepository
}

func NewCatalogController(cat *repository.CatalogRepository, b *repository.BannerRepository, s *repository.SettingsRepository) *CatalogController {
	return &CatalogController{Catalog: cat, Banners: b, Settings: s}
}

// GET /hotels
func (cc *CatalogController) Hotels(c *gin.Context) {
	hotels, err := cc.Catalog.ListHotels()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, hotels)
}

// GET /hotels/:id/menu
func (cc *CatalogController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid hotel id")
		return
	}
	hotel, err := cc.Catalog.GetHotel(uint(id))
	if err != nil {
		resp.NotFound(c, "hotel not found")
		return
	}
	items, err := cc.Catalog.ListMenuForHotel(hotel.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"hotel": hotel, "items": items})
}

// GET /banners
func (cc *CatalogController) BannerList(c *gin.Context) {
	banners, err := cc.Banners.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, banners)
}

// GET /settings
func (cc *CatalogController) GetSettings(c *gin.Context) {
	s, err := cc.Settings.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
