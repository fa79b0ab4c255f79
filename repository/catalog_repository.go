package repository

import (
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

// CatalogRepository covers hotels and their menu items. There is no
// referential integrity between the two: deleting a hotel keeps its menu
// rows, and menu deletes never reach historical orders (those hold copies).
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Hotels ----------------

func (r *CatalogRepository) ListHotels() ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.DB.Order("id").Find(&hotels).Error
	return hotels, err
}

func (r *CatalogRepository) GetHotel(id uint) (*entity.Hotel, error) {
	var h entity.Hotel
	if err := r.DB.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *CatalogRepository) CreateHotel(h *entity.Hotel) error {
	return r.DB.Create(h).Error
}

// ToggleHotelOpen flips isOpen. Unknown id: no rows touched, no error.
func (r *CatalogRepository) ToggleHotelOpen(id uint) (bool, error) {
	res := r.DB.Model(&entity.Hotel{}).Where("id = ?", id).
		Update("is_open", gorm.Expr("NOT is_open"))
	return res.RowsAffected > 0, res.Error
}

func (r *CatalogRepository) DeleteHotel(id uint) error {
	return r.DB.Delete(&entity.Hotel{}, id).Error
}

// ---------------- Menu items ----------------

func (r *CatalogRepository) ListMenuForHotel(hotelID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("hotel_id = ?", hotelID).Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) ListMenu() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *CatalogRepository) ToggleMenuItemAvailable(id uint) (bool, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("is_available", gorm.Expr("NOT is_available"))
	return res.RowsAffected > 0, res.Error
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
