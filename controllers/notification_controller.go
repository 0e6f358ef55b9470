package controllers

import (
	"strconv"

	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"
	"github.com/Crafty4/web1/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// GET /notifications
func (nc *NotificationController) ListForMe(c *gin.Context) {
	items, err := nc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := nc.Svc.MarkRead(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"read": id})
}
