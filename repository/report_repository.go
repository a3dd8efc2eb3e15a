package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

type DailySales struct {
	Day     string          `json:"day"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Tax     decimal.Decimal `json:"tax"`
}

// SalesByDay aggregates completed orders per calendar day. Cancelled
// orders never count toward revenue.
func (r *ReportRepository) SalesByDay(branchID uint, start, end time.Time) ([]DailySales, error) {
	var rows []DailySales
	q := r.DB.Model(&entity.Order{}).
		Select("DATE(created_at) AS day, COUNT(*) AS orders, SUM(total) AS revenue, SUM(tax) AS tax").
		Where("status != ?", entity.OrderStatusCancelled).
		Where("created_at >= ? AND created_at <= ?", start, end)
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	err := q.Group("DATE(created_at)").Order("day ASC").Scan(&rows).Error
	return rows, err
}

type TopItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func (r *ReportRepository) TopItems(branchID uint, start, end time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var rows []TopItem
	q := r.DB.Table("order_items AS oi").
		Select("oi.name AS name, SUM(oi.quantity) AS quantity, SUM(oi.total) AS revenue").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status != ?", entity.OrderStatusCancelled).
		Where("o.created_at >= ? AND o.created_at <= ?", start, end)
	if branchID != 0 {
		q = q.Where("o.branch_id = ?", branchID)
	}
	err := q.Group("oi.name").Order("quantity DESC").Limit(limit).Scan(&rows).Error
	return rows, err
}

type OrderTypeCount struct {
	OrderType string `json:"orderType"`
	Orders    int64  `json:"orders"`
}

func (r *ReportRepository) OrderTypeBreakdown(branchID uint, start, end time.Time) ([]OrderTypeCount, error) {
	var rows []OrderTypeCount
	q := r.DB.Model(&entity.Order{}).
		Select("order_type, COUNT(*) AS orders").
		Where("status != ?", entity.OrderStatusCancelled).
		Where("created_at >= ? AND created_at <= ?", start, end)
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	err := q.Group("order_type").Scan(&rows).Error
	return rows, err
}
