package controllers

import (
	"strconv"

	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"

	"github.com/gin-gonic/gin"
)

type GalleryController struct{ Svc *services.GalleryService }

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{Svc: svc}
}

// GET /gallery
func (gc *GalleryController) List(c *gin.Context) {
	items, err := gc.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/gallery
func (gc *GalleryController) Upload(c *gin.Context) {
	var req services.UploadImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := gc.Svc.Upload(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, img)
}

// DELETE /admin/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := gc.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
