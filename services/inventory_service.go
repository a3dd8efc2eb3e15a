package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
)

type InventoryService struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{DB: db, Repo: repo}
}

// LedgerLine is one order line resolved against the menu: the item with
// its ingredient list plus the selected modifiers with theirs.
type LedgerLine struct {
	MenuItem  *entity.MenuItem
	Quantity  int
	Modifiers []entity.Modifier
}

type ingredientNeed struct {
	inventoryItemID uint
	// menu item name the requirement was first seen on, for error messages
	itemName string
	required decimal.Decimal
}

// aggregateNeeds sums the required quantity per distinct ingredient across
// the whole order. The same ingredient used by several lines (or by a line
// and its modifier) accumulates into one entry. Returned in ascending
// ingredient id order so row locks are always taken in the same order.
func aggregateNeeds(lines []LedgerLine) []ingredientNeed {
	byID := map[uint]*ingredientNeed{}

	add := func(invID uint, itemName string, perUnit decimal.Decimal, qty int) {
		amount := perUnit.Mul(decimal.NewFromInt(int64(qty)))
		if n, ok := byID[invID]; ok {
			n.required = n.required.Add(amount)
			return
		}
		byID[invID] = &ingredientNeed{inventoryItemID: invID, itemName: itemName, required: amount}
	}

	for _, line := range lines {
		for _, ing := range line.MenuItem.Ingredients {
			add(ing.InventoryItemID, line.MenuItem.Name, ing.QuantityPerUnit, line.Quantity)
		}
		for _, mod := range line.Modifiers {
			for _, ing := range mod.Ingredients {
				add(ing.InventoryItemID, line.MenuItem.Name, ing.QuantityPerUnit, line.Quantity)
			}
		}
	}

	out := make([]ingredientNeed, 0, len(byID))
	for _, n := range byID {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].inventoryItemID < out[j].inventoryItemID })
	return out
}

// CheckAvailability is the fast-fail pre-check before the order
// transaction opens. It reports every shortfall, not just the first.
// Deduct re-verifies under row locks; this read is advisory only.
func (s *InventoryService) CheckAvailability(lines []LedgerLine) ([]apperr.InventoryShortfall, error) {
	needs := aggregateNeeds(lines)
	if len(needs) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(needs))
	for _, n := range needs {
		ids = append(ids, n.inventoryItemID)
	}
	items, err := s.Repo.GetItemsByIDs(ids)
	if err != nil {
		return nil, err
	}
	stock := make(map[uint]entity.InventoryItem, len(items))
	for _, it := range items {
		stock[it.ID] = it
	}

	var shortfalls []apperr.InventoryShortfall
	for _, n := range needs {
		item, ok := stock[n.inventoryItemID]
		if !ok {
			return nil, apperr.NotFound("inventory item %d not found", n.inventoryItemID)
		}
		if item.Quantity.LessThan(n.required) {
			shortfalls = append(shortfalls, apperr.InventoryShortfall{
				ItemName:       n.itemName,
				IngredientName: item.Name,
				Required:       n.required.String(),
				Available:      item.Quantity.String(),
			})
		}
	}
	return shortfalls, nil
}

// Deduct runs inside the caller's order transaction and is the
// authoritative availability check: each ingredient row is re-read under a
// row lock, so a concurrent order that would jointly overdraw the stock
// observes this decrement before deciding. Any shortfall aborts the whole
// transaction.
func (s *InventoryService) Deduct(tx *gorm.DB, order *entity.Order, lines []LedgerLine, actorID uint) error {
	needs := aggregateNeeds(lines)

	type locked struct {
		need ingredientNeed
		item *entity.InventoryItem
	}
	var (
		shortfalls []apperr.InventoryShortfall
		ok         []locked
	)
	for _, n := range needs {
		item, err := s.Repo.GetItemForUpdate(tx, n.inventoryItemID)
		if err != nil {
			return fmt.Errorf("lock inventory item %d: %w", n.inventoryItemID, err)
		}
		if item.Quantity.LessThan(n.required) {
			shortfalls = append(shortfalls, apperr.InventoryShortfall{
				ItemName:       n.itemName,
				IngredientName: item.Name,
				Required:       n.required.String(),
				Available:      item.Quantity.String(),
			})
			continue
		}
		ok = append(ok, locked{need: n, item: item})
	}
	if len(shortfalls) > 0 {
		return &apperr.InsufficientInventoryError{Shortfalls: shortfalls}
	}

	for _, l := range ok {
		prev := l.item.Quantity
		l.item.Quantity = prev.Sub(l.need.required)
		l.item.Status = entity.ResolveStockStatus(l.item.Quantity, l.item.MinStock)
		if err := s.Repo.SaveItem(tx, l.item); err != nil {
			return err
		}
		audit := entity.InventoryTransaction{
			Type:             entity.InventoryTxOutgoing,
			Quantity:         l.need.required,
			PreviousQuantity: prev,
			NewQuantity:      l.item.Quantity,
			Reason:           "order " + order.OrderNumber,
			Reference:        order.OrderNumber,
			InventoryItemID:  l.item.ID,
			BranchID:         order.BranchID,
			CreatedByID:      actorID,
		}
		if err := s.Repo.CreateTransaction(tx, &audit); err != nil {
			return err
		}
	}
	return nil
}

// Restore is the mirror of Deduct, used when a counted order is
// cancelled: quantities come back, status is recomputed and an INCOMING
// audit row is appended per ingredient.
func (s *InventoryService) Restore(tx *gorm.DB, order *entity.Order, lines []LedgerLine, actorID uint) error {
	needs := aggregateNeeds(lines)
	for _, n := range needs {
		item, err := s.Repo.GetItemForUpdate(tx, n.inventoryItemID)
		if err != nil {
			return fmt.Errorf("lock inventory item %d: %w", n.inventoryItemID, err)
		}
		prev := item.Quantity
		item.Quantity = prev.Add(n.required)
		item.Status = entity.ResolveStockStatus(item.Quantity, item.MinStock)
		if err := s.Repo.SaveItem(tx, item); err != nil {
			return err
		}
		audit := entity.InventoryTransaction{
			Type:             entity.InventoryTxIncoming,
			Quantity:         n.required,
			PreviousQuantity: prev,
			NewQuantity:      item.Quantity,
			Reason:           "order " + order.OrderNumber + " cancelled",
			Reference:        order.OrderNumber,
			InventoryItemID:  item.ID,
			BranchID:         order.BranchID,
			CreatedByID:      actorID,
		}
		if err := s.Repo.CreateTransaction(tx, &audit); err != nil {
			return err
		}
	}
	return nil
}

// Adjust applies a manual stock correction. Adjustments that would take
// the quantity negative are rejected.
func (s *InventoryService) Adjust(itemID uint, delta decimal.Decimal, reason string, actorID uint) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetItemForUpdate(tx, itemID)
		if err != nil {
			return apperr.NotFound("inventory item %d not found", itemID)
		}
		prev := item.Quantity
		next := prev.Add(delta)
		if next.IsNegative() {
			return apperr.Validation("adjustment would take %q below zero (current %s, delta %s)",
				item.Name, prev.String(), delta.String())
		}
		item.Quantity = next
		item.Status = entity.ResolveStockStatus(next, item.MinStock)
		if err := s.Repo.SaveItem(tx, item); err != nil {
			return err
		}
		audit := entity.InventoryTransaction{
			Type:             entity.InventoryTxAdjustment,
			Quantity:         delta,
			PreviousQuantity: prev,
			NewQuantity:      next,
			Reason:           reason,
			Reference:        "manual",
			InventoryItemID:  item.ID,
			BranchID:         item.BranchID,
			CreatedByID:      actorID,
		}
		if err := s.Repo.CreateTransaction(tx, &audit); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
