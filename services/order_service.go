package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// OrderNotifier pushes real-time order events to branch-scoped listeners.
// Implemented by the websocket hub; nil-safe via the notify helpers below.
type OrderNotifier interface {
	NewOrder(branchID uint, order *entity.Order)
	OrderStatusUpdated(branchID, orderID uint, orderNumber, status string)
	PaymentStatusUpdated(branchID, orderID uint, orderNumber, paymentStatus, method string)
}

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	BranchRepo *repository.BranchRepository
	Inventory  *InventoryService
	Printing   *PrintService
	Notifier   OrderNotifier
	Log        *logrus.Logger

	// enforce the forward status graph; when false only terminal states
	// are protected
	StrictTransitions bool
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	branchRepo *repository.BranchRepository,
	inventory *InventoryService,
	printing *PrintService,
	notifier OrderNotifier,
	log *logrus.Logger,
	strictTransitions bool,
) *OrderService {
	return &OrderService{
		DB:                db,
		Repo:              repo,
		BranchRepo:        branchRepo,
		Inventory:         inventory,
		Printing:          printing,
		Notifier:          notifier,
		Log:               log,
		StrictTransitions: strictTransitions,
	}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint             `json:"menuItemId" binding:"required"`
	Quantity   int              `json:"quantity" binding:"required,min=1"`
	Price      *decimal.Decimal `json:"price"`
	Notes      string           `json:"notes"`
	Modifiers  []uint           `json:"modifiers"`
}

type CreateOrderReq struct {
	Items         []OrderLineIn   `json:"items" binding:"required,min=1,dive"`
	OrderType     string          `json:"orderType" binding:"required,oneof=DINE_IN TAKEAWAY DELIVERY"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD"`
	BranchID      uint            `json:"branchId"`
	BranchName    string          `json:"branchName"`
	TableNumber   string          `json:"tableNumber"`
	CustomerName  string          `json:"customerName"`
	Discount      decimal.Decimal `json:"discount"`
	OrderNumber   string          `json:"orderNumber"`
}

// ----- Create -----

func (s *OrderService) Create(actor utils.Actor, req *CreateOrderReq) (*entity.Order, error) {
	if req.TableNumber == "" && req.CustomerName == "" {
		return nil, apperr.Validation("either tableNumber or customerName is required")
	}
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot create orders")
	}
	if req.Discount.IsNegative() {
		return nil, apperr.Validation("discount cannot be negative")
	}

	branch, err := s.resolveBranch(actor, req.BranchID, req.BranchName)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessBranch(branch.ID) {
		return nil, apperr.Forbidden("no access to branch %q", branch.Name)
	}

	items, lines, err := s.buildLines(req.Items)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		tax = tax.Add(it.Tax)
	}
	total := subtotal.Add(tax).Sub(req.Discount)

	orderNumber := strings.TrimSpace(req.OrderNumber)
	if req.OrderNumber != "" && orderNumber == "" {
		return nil, apperr.Validation("orderNumber must be a non-empty string")
	}
	if orderNumber == "" {
		orderNumber = utils.GenerateOrderNumber()
	}
	if exists, err := s.Repo.OrderNumberExists(orderNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Conflict("order number %q already exists", orderNumber)
	}

	// fast-fail UX check; Deduct below re-verifies under row locks
	shortfalls, err := s.Inventory.CheckAvailability(lines)
	if err != nil {
		return nil, err
	}
	if len(shortfalls) > 0 {
		return nil, &apperr.InsufficientInventoryError{Shortfalls: shortfalls}
	}

	order := &entity.Order{
		OrderNumber:   orderNumber,
		OrderType:     req.OrderType,
		Status:        entity.OrderStatusPending,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      req.Discount,
		Total:         total,
		PaymentStatus: entity.PaymentStatusUnpaid,
		PaymentMethod: req.PaymentMethod,
		TableNumber:   req.TableNumber,
		CustomerName:  req.CustomerName,
		BranchID:      branch.ID,
		CreatedByID:   actor.UserID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}
		return s.Inventory.Deduct(tx, order, lines, actor.UserID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = items

	// detached side effects: a printer or socket failure never fails the
	// committed order
	go s.afterCreate(order)

	return order, nil
}

func (s *OrderService) afterCreate(order *entity.Order) {
	if s.Printing != nil {
		if err := s.Printing.DispatchForOrder(order); err != nil {
			s.Log.WithFields(logrus.Fields{
				"order": order.OrderNumber,
			}).Warnf("print dispatch failed: %v", err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.NewOrder(order.BranchID, order)
	}
}

// resolveBranch canonicalizes the requested branch once: explicit id wins,
// then name lookup, then the actor's own branch. Admins must name a branch.
func (s *OrderService) resolveBranch(actor utils.Actor, branchID uint, branchName string) (*entity.Branch, error) {
	if branchID != 0 {
		b, err := s.BranchRepo.Get(branchID)
		if err != nil {
			return nil, apperr.NotFound("branch %d not found", branchID)
		}
		return b, nil
	}
	if branchName != "" {
		b, err := s.BranchRepo.FindByName(branchName)
		if err != nil {
			return nil, apperr.NotFound("branch %q not found", branchName)
		}
		return b, nil
	}
	if actor.IsAdmin() {
		return nil, apperr.Validation("branch is required")
	}
	if actor.BranchID == 0 {
		return nil, apperr.Validation("actor has no assigned branch")
	}
	b, err := s.BranchRepo.Get(actor.BranchID)
	if err != nil {
		return nil, apperr.NotFound("branch %d not found", actor.BranchID)
	}
	return b, nil
}

// buildLines resolves every request line against the menu, snapshots
// name/price/taxRate/modifiers onto order items and prepares the ledger
// lines for inventory deduction.
func (s *OrderService) buildLines(in []OrderLineIn) ([]entity.OrderItem, []LedgerLine, error) {
	ids := make([]uint, 0, len(in))
	for _, line := range in {
		ids = append(ids, line.MenuItemID)
	}
	menuItems, err := s.Repo.GetMenuItemsForOrder(ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uint]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	var missing []string
	for _, line := range in {
		if _, ok := byID[line.MenuItemID]; !ok {
			missing = append(missing, fmt.Sprint(line.MenuItemID))
		}
	}
	if len(missing) > 0 {
		return nil, nil, apperr.NotFound("menu items not found: %s", strings.Join(missing, ", "))
	}

	items := make([]entity.OrderItem, 0, len(in))
	lines := make([]LedgerLine, 0, len(in))
	for _, line := range in {
		menuItem := byID[line.MenuItemID]

		selected, snapshots, err := resolveModifiers(menuItem, line.Modifiers)
		if err != nil {
			return nil, nil, err
		}

		price := menuItem.Price
		for _, m := range selected {
			price = price.Add(m.Price)
		}
		if line.Price != nil {
			price = *line.Price
		}

		taxRate := menuItem.TaxRate
		if menuItem.TaxExempt {
			taxRate = decimal.Zero
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		lineSubtotal := price.Mul(qty)
		lineTax := lineSubtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)

		menuItemID := menuItem.ID
		items = append(items, entity.OrderItem{
			MenuItemID: &menuItemID,
			Name:       menuItem.Name,
			Quantity:   line.Quantity,
			Price:      price,
			TaxRate:    taxRate,
			Tax:        lineTax,
			Total:      lineSubtotal.Add(lineTax),
			Notes:      line.Notes,
			Modifiers:  snapshots,
		})
		lines = append(lines, LedgerLine{
			MenuItem:  menuItem,
			Quantity:  line.Quantity,
			Modifiers: selected,
		})
	}
	return items, lines, nil
}

func resolveModifiers(menuItem *entity.MenuItem, modifierIDs []uint) ([]entity.Modifier, []entity.ModifierSnapshot, error) {
	if len(modifierIDs) == 0 {
		return nil, nil, nil
	}
	available := make(map[uint]entity.Modifier, len(menuItem.Modifiers))
	for _, m := range menuItem.Modifiers {
		available[m.ID] = m
	}
	selected := make([]entity.Modifier, 0, len(modifierIDs))
	snapshots := make([]entity.ModifierSnapshot, 0, len(modifierIDs))
	for _, id := range modifierIDs {
		m, ok := available[id]
		if !ok {
			return nil, nil, apperr.Validation("modifier %d is not available on %q", id, menuItem.Name)
		}
		selected = append(selected, m)
		snapshots = append(snapshots, entity.ModifierSnapshot{ID: m.ID, Name: m.Name, Price: m.Price})
	}
	return selected, snapshots, nil
}

// ----- Read -----

func (s *OrderService) Get(actor utils.Actor, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, apperr.NotFound("order %d not found", orderID)
	}
	if !actor.CanAccessBranch(o.BranchID) {
		return nil, apperr.Forbidden("no access to this order's branch")
	}
	return o, nil
}

type OrderListOut struct {
	Items    []entity.Order `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

func (s *OrderService) List(actor utils.Actor, f repository.OrderFilter, branchName string) (*OrderListOut, error) {
	if branchName != "" {
		b, err := s.BranchRepo.FindByName(branchName)
		if err != nil {
			return nil, apperr.NotFound("branch %q not found", branchName)
		}
		f.BranchID = b.ID
	}
	// non-admins only ever see their own branch
	if !actor.IsAdmin() {
		if f.BranchID != 0 && f.BranchID != actor.BranchID {
			return nil, apperr.Forbidden("no access to branch %d", f.BranchID)
		}
		f.BranchID = actor.BranchID
	}
	items, total, err := s.Repo.ListOrders(f)
	if err != nil {
		return nil, err
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	return &OrderListOut{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}
