package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

// ---------------- Items ----------------

func (r *InventoryRepository) CreateItem(item *entity.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) GetItem(id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemForUpdate re-reads the row under a row lock so concurrent orders
// touching the same ingredient serialize their read-then-write. SQLite has
// no SELECT FOR UPDATE; its single-writer model covers the same ground.
func (r *InventoryRepository) GetItemForUpdate(tx *gorm.DB, id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) GetItemsByIDs(ids []uint) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *InventoryRepository) SaveItem(tx *gorm.DB, item *entity.InventoryItem) error {
	return tx.Model(&entity.InventoryItem{}).Where("id = ?", item.ID).Updates(map[string]any{
		"quantity": item.Quantity,
		"status":   item.Status,
	}).Error
}

func (r *InventoryRepository) UpdateItem(item *entity.InventoryItem) error {
	return r.DB.Save(item).Error
}

func (r *InventoryRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.InventoryItem{}, id).Error
}

func (r *InventoryRepository) ListItems(branchID uint, page, pageSize int) ([]entity.InventoryItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}
	q := r.DB.Model(&entity.InventoryItem{})
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.InventoryItem
	err := q.Order("name ASC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&items).Error
	return items, total, err
}

func (r *InventoryRepository) ListLowStock(branchID uint) ([]entity.InventoryItem, error) {
	q := r.DB.Where("status IN ?", []string{entity.StockStatusLow, entity.StockStatusOut})
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	var items []entity.InventoryItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

// ---------------- Audit transactions ----------------

func (r *InventoryRepository) CreateTransaction(tx *gorm.DB, t *entity.InventoryTransaction) error {
	return tx.Create(t).Error
}

func (r *InventoryRepository) ListTransactions(itemID uint, page, pageSize int) ([]entity.InventoryTransaction, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	q := r.DB.Model(&entity.InventoryTransaction{}).Where("inventory_item_id = ?", itemID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []entity.InventoryTransaction
	err := q.Order("id DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&rows).Error
	return rows, total, err
}
