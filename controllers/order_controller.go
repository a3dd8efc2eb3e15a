package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "order created", order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)

	f := repository.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		OrderType:     c.Query("orderType"),
		Search:        c.Query("search"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.EndDate = &end
		}
	}

	out, err := oc.Service.List(actor, f, c.Query("branchName"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	order, err := oc.Service.Get(actor, paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", order)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// PUT /api/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.UpdateStatus(actor, paramID(c), req.Status, req.Notes)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "status updated", order)
}

type updatePaymentReq struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD"`
}

// PUT /api/orders/:id/payment-status
func (oc *OrderController) UpdatePaymentStatus(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req updatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.UpdatePaymentStatus(actor, paramID(c), req.PaymentStatus, req.PaymentMethod)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payment status updated", order)
}

// DELETE /api/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := oc.Service.Delete(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order deleted", nil)
}
