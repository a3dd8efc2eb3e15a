package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/services"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

// default range: the last 30 days
func reportRange(c *gin.Context) (time.Time, time.Time) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return start, end
}

// GET /api/reports/sales
func (rc *ReportController) Sales(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	start, end := reportRange(c)
	out, err := rc.Service.Sales(actor, uint(branchID), start, end)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

// GET /api/reports/top-items
func (rc *ReportController) TopItems(c *gin.Context) {
	actor := utils.CurrentActor(c)
	branchID, _ := strconv.Atoi(c.Query("branchId"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	start, end := reportRange(c)
	out, err := rc.Service.TopItems(actor, uint(branchID), start, end, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}
