package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type PrinterController struct {
	Service *services.PrintService
}

func NewPrinterController(service *services.PrintService) *PrinterController {
	return &PrinterController{Service: service}
}

func (pc *PrinterController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.PrinterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Service.CreatePrinter(actor, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "printer created", p)
}

func (pc *PrinterController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	out, err := pc.Service.ListPrinters(actor, uint(branchID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

func (pc *PrinterController) Update(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req services.PrinterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Service.UpdatePrinter(actor, paramID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "printer updated", p)
}

func (pc *PrinterController) Delete(c *gin.Context) {
	actor := utils.CurrentActor(c)
	if err := pc.Service.DeletePrinter(actor, paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "printer deleted", nil)
}

// GET /api/print-jobs
func (pc *PrinterController) ListJobs(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	out, err := pc.Service.ListJobs(actor, uint(branchID), c.Query("status"), page, pageSize)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

// POST /api/print-jobs/:id/retry
func (pc *PrinterController) RetryJob(c *gin.Context) {
	actor := utils.CurrentActor(c)
	job, err := pc.Service.RetryJobChecked(actor, paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "print job queued", job)
}
