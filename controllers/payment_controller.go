package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/satyasudipta98-dot/Foodie-we/configs"
	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/services"
	"github.com/satyasudipta98-dot/Foodie-we/utils"
)

type PaymentController struct {
	CartSvc *services.CartService
	Cfg     *configs.Config
}

func NewPaymentController(cartSvc *services.CartService, cfg *configs.Config) *PaymentController {
	return &PaymentController{CartSvc: cartSvc, Cfg: cfg}
}

// GET /payment/request — UPI deep link and QR for the current cart total.
// Generation only; no reconciliation with any payment processor.
func (pc *PaymentController) Request(c *gin.Context) {
	_, quote, err := pc.CartSvc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if pc.Cfg.UPIPayeeID == "" {
		resp.BadRequest(c, "online payment not configured")
		return
	}
	resp.OK(c, services.BuildPaymentRequest(pc.Cfg.UPIPayeeID, pc.Cfg.UPIPayeeName, quote.Total))
}
