package controllers

import (
	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"
	"github.com/Crafty4/web1/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct{ Svc *services.RatingService }

func NewRatingController(svc *services.RatingService) *RatingController {
	return &RatingController{Svc: svc}
}

type RateReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Value      int  `json:"value" binding:"required"`
}

// POST /ratings
func (rc *RatingController) Rate(c *gin.Context) {
	var req RateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := rc.Svc.Rate(utils.CurrentUserID(c), req.MenuItemID, req.Value)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}
