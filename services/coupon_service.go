package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
)

var ErrCouponNotFound = errors.New("coupon not found")

type CouponService struct {
	CouponRepo *repository.CouponRepository
	CartRepo   *repository.CartRepository
}

func NewCouponService(cr *repository.CouponRepository, cart *repository.CartRepository) *CouponService {
	return &CouponService{CouponRepo: cr, CartRepo: cart}
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.CouponRepo.List()
}

// Apply matches the user-entered code case-insensitively and attaches the
// coupon to the cart, replacing any previously applied one. A miss leaves
// the applied-coupon state untouched. No expiry, minimum-order or usage
// checks: any matching code is accepted, repeatedly.
func (s *CouponService) Apply(userID uint, code string) (*entity.Coupon, error) {
	coupon, err := s.CouponRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	if _, err := s.CartRepo.GetOrCreateCart(userID); err != nil {
		return nil, err
	}
	if err := s.CartRepo.SetCoupon(userID, &coupon.ID); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Remove detaches the applied coupon, if any.
func (s *CouponService) Remove(userID uint) error {
	return s.CartRepo.SetCoupon(userID, nil)
}
