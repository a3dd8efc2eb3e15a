package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// LockOrder takes the order's row lock so read-then-write sequences in
// the same transaction serialize against concurrent callers. SQLite has
// no SELECT FOR UPDATE; its single-writer model covers the same ground.
func (r *OrderRepository) LockOrder(tx *gorm.DB, orderID uint) error {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var o entity.Order
	return q.Select("id").First(&o, orderID).Error
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter collects the list-endpoint query parameters.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	OrderType     string
	BranchID      uint
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

func (r *OrderRepository) ListOrders(f OrderFilter) ([]entity.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 200 {
		f.PageSize = 20
	}

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.OrderType != "" {
		q = q.Where("order_type = ?", f.OrderType)
	}
	if f.BranchID != 0 {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.StartDate != nil {
		q = q.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("created_at <= ?", *f.EndDate)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("order_number LIKE ? OR customer_name LIKE ? OR table_number LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "id"
	switch f.SortBy {
	case "createdAt":
		sortBy = "created_at"
	case "total":
		sortBy = "total"
	case "orderNumber":
		sortBy = "order_number"
	}
	order := sortBy + " DESC"
	if f.SortOrder == "asc" {
		order = sortBy + " ASC"
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Order(order).
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateOrderFields(tx *gorm.DB, orderID uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

// UpdateStatusGuard flips status only when the current value matches,
// returning the affected row count so callers can detect a lost race.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, fromStatus, toStatus string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, fromStatus).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) OrderNumberExists(number string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("order_number = ?", number).Count(&cnt).Error
	return cnt > 0, err
}

// ---------------- Menu lookups for order building ----------------

// GetMenuItemsForOrder loads the referenced menu items with everything the
// pricing and deduction steps need in one query.
func (r *OrderRepository) GetMenuItemsForOrder(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Category").
		Preload("Ingredients.InventoryItem").
		Preload("Modifiers.Ingredients.InventoryItem").
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) CountPaymentsForOrder(tx *gorm.DB, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Payment{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
