package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{Service: service}
}

func (ic *InventoryController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.InventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.CreateItem(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "inventory item created", item)
}

func (ic *InventoryController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	out, err := ic.Service.ListItems(actor, uint(branchID), page, pageSize)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (ic *InventoryController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	item, err := ic.Service.GetItem(actor, paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", item)
}

func (ic *InventoryController) Update(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.InventoryItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.UpdateItem(actor, paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "inventory item updated", item)
}

func (ic *InventoryController) Delete(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := ic.Service.DeleteItem(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "inventory item deleted", nil)
}

type adjustReq struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

// POST /api/inventory/:id/adjust
func (ic *InventoryController) Adjust(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.AdjustStock(actor, paramID(c), req.Delta, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "stock adjusted", item)
}

// GET /api/inventory/:id/transactions
func (ic *InventoryController) Transactions(c *gin.Context) {
	actor := utils.CurrentActor(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	out, err := ic.Service.ListTransactions(actor, paramID(c), page, pageSize)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

// GET /api/inventory/low-stock
func (ic *InventoryController) LowStock(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	out, err := ic.Service.ListLowStock(actor, uint(branchID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}
