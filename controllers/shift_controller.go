package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type ShiftController struct {
	Service *services.ShiftService
}

func NewShiftController(service *services.ShiftService) *ShiftController {
	return &ShiftController{Service: service}
}

type clockInReq struct {
	BranchID uint `json:"branchId"`
}

func (sc *ShiftController) ClockIn(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req clockInReq
	// body is optional for branch-bound staff
	_ = c.ShouldBindJSON(&req)
	shift, err := sc.Service.ClockIn(actor, req.BranchID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "clocked in", shift)
}

type clockOutReq struct {
	Notes string `json:"notes"`
}

func (sc *ShiftController) ClockOut(c *gin.Context) {
	actor := utils.CurrentActor(c)
	var req clockOutReq
	_ = c.ShouldBindJSON(&req)
	shift, err := sc.Service.ClockOut(actor, req.Notes)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "clocked out", shift)
}

func (sc *ShiftController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			e := t.Add(24*time.Hour - time.Nanosecond)
			end = &e
		}
	}
	out, err := sc.Service.List(actor, uint(branchID), start, end)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}
