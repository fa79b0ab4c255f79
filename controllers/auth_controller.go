package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/satyasudipta98-dot/Foodie-we/pkg/resp"
	"github.com/satyasudipta98-dot/Foodie-we/services"
	"github.com/satyasudipta98-dot/Foodie-we/utils"
)

type AuthController struct {
	Svc     *services.AuthService
	CartSvc *services.CartService
}

func NewAuthController(svc *services.AuthService, cartSvc *services.CartService) *AuthController {
	return &AuthController{Svc: svc, CartSvc: cartSvc}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Svc.Register(req.Name, req.Mobile, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrMobileRegistered) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Svc.Login(req.Mobile, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// POST /auth/logout — the session is the token, so the only server-side
// effect is dropping the in-progress cart.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.CartSvc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}
