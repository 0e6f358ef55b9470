package controllers

import (
	"net/http"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"
	"github.com/Crafty4/web1/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "username": u.Username, "email": u.Email,
		"phoneNumber": u.PhoneNumber, "role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, userJSON(user))
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userJSON(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}
