package controllers

import (
	"strconv"

	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type SetAvailabilityReq struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /admin/menu/:id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req SetAvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Svc.SetAvailability(uint(id), *req.IsAvailable)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}
