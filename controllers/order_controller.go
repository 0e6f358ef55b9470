package controllers

import (
	"strconv"

	"github.com/Crafty4/web1/entity"
	"github.com/Crafty4/web1/pkg/resp"
	"github.com/Crafty4/web1/services"
	"github.com/Crafty4/web1/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Svc.GetForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Svc.Cancel(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// ===== Admin =====

// GET /admin/orders
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Svc.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	type row struct {
		entity.Order
		Username string `json:"username"`
	}
	items := make([]row, 0, len(orders))
	for _, o := range orders {
		items = append(items, row{Order: o, Username: o.User.Username})
	}
	resp.OK(c, gin.H{"items": items})
}

type TransitionReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) Transition(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req TransitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status "+req.Status)
		return
	}
	order, err := oc.Svc.Transition(uint(id), status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /admin/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/orders/export → xlsx download
func (oc *OrderController) Export(c *gin.Context) {
	orders, err := oc.Svc.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		resp.Error(c, err)
		return
	}

	headers := []string{"ID", "Customer", "Username", "Phone", "Address", "Status", "Total", "Items", "CreatedAt"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(int(o.ID))
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.User.Username)
		row.AddCell().SetValue(o.PhoneNumber)
		row.AddCell().SetValue(o.Address)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.Total.StringFixed(2))
		row.AddCell().SetValue(len(o.Items))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		resp.Error(c, err)
		return
	}
}
