package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/services"
	"github.com/satyasudipta98-dot/Foodie-we/utils"
)

type OrderController struct {
	Svc     *services.OrderService
	AuthSvc *services.AuthService
}

func NewOrderController(svc *services.OrderService, authSvc *services.AuthService) *OrderController {
	return &OrderController{Svc: svc, AuthSvc: authSvc}
}

// POST /orders — checkout the current cart.
func (oc *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := oc.AuthSvc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, err := oc.Svc.Place(user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrBadPaymentMethod),
			errors.Is(err, services.ErrShortTransaction):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders — the caller's order history, newest first.
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
