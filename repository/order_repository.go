package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Ledger writes ----------------

// CreateOrder persists the order and its items in one go (items ride the
// association). Orders are append-only from here on; only status changes.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// UpdateStatus overwrites status unconditionally. No transition guard:
// any status may replace any other. Returns whether a row matched.
func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) (bool, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Queries ----------------

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Where("user_id = ?", userID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ---------------- Derived aggregates (never stored) ----------------

// Revenue sums totals over orders whose status is not Rejected.
func (r *OrderRepository) Revenue() (int64, error) {
	var row struct{ Revenue int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("status <> ?", entity.StatusRejected).
		Scan(&row).Error
	return row.Revenue, err
}

// CountCreatedBetween counts orders in a half-open [from, to) window.
func (r *OrderRepository) CountCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}
