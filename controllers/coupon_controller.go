package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/services"
	"github.com/satyasudipta98-dot/Foodie-we/utils"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// GET /coupons
func (h *CouponController) List(c *gin.Context) {
	coupons, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// POST /cart/coupon
func (h *CouponController) Apply(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := h.Svc.Apply(utils.CurrentUserID(c), body.Code)
	if err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupon)
}

// DELETE /cart/coupon
func (h *CouponController) Remove(c *gin.Context) {
	if err := h.Svc.Remove(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
