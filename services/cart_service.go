package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
)

var ErrMenuItemUnavailable = errors.New("menu item not available")

type CartService struct {
	DB           *gorm.DB
	CartRepo     *repository.CartRepository
	CatalogRepo  *repository.CatalogRepository
	SettingsRepo *repository.SettingsRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository, sr *repository.SettingsRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat, SettingsRepo: sr}
}

// Get returns the cart plus the live price quote for it.
func (s *CartService) Get(userID uint) (*entity.Cart, PriceQuote, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, PriceQuote{}, err
	}
	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, PriceQuote{}, err
	}
	return c, Quote(c.Items, settings, c.Coupon), nil
}

// Add puts one unit of a menu item into the cart; an existing line for the
// same item gains quantity instead. The line snapshots name and price.
func (s *CartService) Add(userID, menuItemID uint) error {
	m, err := s.CatalogRepo.GetMenuItem(menuItemID)
	if err != nil {
		return err
	}
	if !m.IsAvailable {
		return ErrMenuItemUnavailable
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		HotelID:    m.HotelID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Qty:        1,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// ChangeQty applies a delta to a line, clamped at zero; zero removes the
// line. Unknown item ids are no-ops, so the operation is total.
func (s *CartService) ChangeQty(userID, itemID uint, delta int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AdjustQty(tx, userID, itemID, delta)
	})
}

// Clear empties the cart and drops any applied coupon. Runs on logout and
// after a successful checkout.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
