package services

import (
	"github.com/shopspring/decimal"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// Item CRUD around the ledger. Branch scoping mirrors the order paths.

type InventoryItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity" binding:"omitempty,gte=0"`
	MinStock    decimal.Decimal `json:"minStock" binding:"omitempty,gte=0"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	BranchID    uint            `json:"branchId"`
}

func (s *InventoryService) CreateItem(actor utils.Actor, req *InventoryItemReq) (*entity.InventoryItem, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage inventory")
	}
	branchID := req.BranchID
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	if branchID == 0 {
		return nil, apperr.Validation("branchId is required")
	}

	item := &entity.InventoryItem{
		Name:        req.Name,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		Status:      entity.ResolveStockStatus(req.Quantity, req.MinStock),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		BranchID:    branchID,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) GetItem(actor utils.Actor, id uint) (*entity.InventoryItem, error) {
	item, err := s.Repo.GetItem(id)
	if err != nil {
		return nil, apperr.NotFound("inventory item %d not found", id)
	}
	if !actor.CanAccessBranch(item.BranchID) {
		return nil, apperr.Forbidden("no access to this item's branch")
	}
	return item, nil
}

type InventoryListOut struct {
	Items    []entity.InventoryItem `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
}

func (s *InventoryService) ListItems(actor utils.Actor, branchID uint, page, pageSize int) (*InventoryListOut, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	items, total, err := s.Repo.ListItems(branchID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &InventoryListOut{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateItem edits metadata and thresholds. Quantity changes go through
// Adjust so the audit trail stays complete.
func (s *InventoryService) UpdateItem(actor utils.Actor, id uint, req *InventoryItemReq) (*entity.InventoryItem, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage inventory")
	}
	item, err := s.Repo.GetItem(id)
	if err != nil {
		return nil, apperr.NotFound("inventory item %d not found", id)
	}
	if !actor.CanAccessBranch(item.BranchID) {
		return nil, apperr.Forbidden("no access to this item's branch")
	}

	item.Name = req.Name
	item.Unit = req.Unit
	item.MinStock = req.MinStock
	item.Category = req.Category
	item.Subcategory = req.Subcategory
	item.Status = entity.ResolveStockStatus(item.Quantity, item.MinStock)
	if err := s.Repo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete inventory items")
	}
	item, err := s.Repo.GetItem(id)
	if err != nil {
		return apperr.NotFound("inventory item %d not found", id)
	}
	if !actor.CanAccessBranch(item.BranchID) {
		return apperr.Forbidden("no access to this item's branch")
	}
	return s.Repo.DeleteItem(id)
}

func (s *InventoryService) ListLowStock(actor utils.Actor, branchID uint) ([]entity.InventoryItem, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	return s.Repo.ListLowStock(branchID)
}

type TransactionListOut struct {
	Items    []entity.InventoryTransaction `json:"items"`
	Total    int64                         `json:"total"`
	Page     int                           `json:"page"`
	PageSize int                           `json:"pageSize"`
}

func (s *InventoryService) ListTransactions(actor utils.Actor, itemID uint, page, pageSize int) (*TransactionListOut, error) {
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		return nil, apperr.NotFound("inventory item %d not found", itemID)
	}
	if !actor.CanAccessBranch(item.BranchID) {
		return nil, apperr.Forbidden("no access to this item's branch")
	}
	rows, total, err := s.Repo.ListTransactions(itemID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	return &TransactionListOut{Items: rows, Total: total, Page: page, PageSize: pageSize}, nil
}

// AdjustStock is the endpoint-facing wrapper around Adjust with access
// checks.
func (s *InventoryService) AdjustStock(actor utils.Actor, itemID uint, delta decimal.Decimal, reason string) (*entity.InventoryItem, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot adjust stock")
	}
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		return nil, apperr.NotFound("inventory item %d not found", itemID)
	}
	if !actor.CanAccessBranch(item.BranchID) {
		return nil, apperr.Forbidden("no access to this item's branch")
	}
	return s.Adjust(itemID, delta, reason, actor.UserID)
}
