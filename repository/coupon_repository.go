package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.Order("id").Find(&coupons).Error
	return coupons, err
}

// FindByCode matches case-insensitively against the full catalog.
func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("LOWER(code) = ?", strings.ToLower(strings.TrimSpace(code))).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) FindByID(id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return r.DB.Create(c).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Coupon{}, id).Error
}
