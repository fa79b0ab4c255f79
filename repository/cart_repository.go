package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, items in insertion order. A user
// without a cart gets an empty one back (no error) so callers can render it.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Coupon").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges on menu item id: an existing line gains quantity, a new
// line is appended (insertion order is what the storefront displays).
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, row.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// AdjustQty applies a delta, clamping at zero; zero deletes the line.
// Unknown item id is a no-op.
func (r *CartRepository) AdjustQty(tx *gorm.DB, userID, itemID uint, delta int) error {
	var item entity.CartItem
	err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	qty := item.Qty + delta
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		return tx.Delete(&item).Error
	}
	item.Qty = qty
	return tx.Save(&item).Error
}

func (r *CartRepository) SetCoupon(userID uint, couponID *uint) error {
	return r.DB.Model(&entity.Cart{}).Where("user_id = ?", userID).
		Update("coupon_id", couponID).Error
}

// ClearCart removes every line and the applied coupon.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Update("coupon_id", nil).Error
}
