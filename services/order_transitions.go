package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// UpdateStatus moves an order through its lifecycle. Kitchen staff may
// update status (unlike create). Terminal states never change again; the
// forward graph is additionally enforced in strict mode. A transition into
// CANCELLED restores the deducted inventory in the same transaction.
func (s *OrderService) UpdateStatus(actor utils.Actor, orderID uint, newStatus, notes string) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(newStatus) {
		return nil, apperr.Validation("unknown order status %q", newStatus)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, apperr.NotFound("order %d not found", orderID)
	}
	if !actor.CanAccessBranch(o.BranchID) {
		return nil, apperr.Forbidden("no access to this order's branch")
	}
	if entity.IsTerminalOrderStatus(o.Status) {
		return nil, apperr.Conflict("order is %s and can no longer change status", o.Status)
	}
	if s.StrictTransitions && !entity.CanTransitionOrderStatus(o.Status, newStatus) {
		return nil, apperr.Validation("cannot move order from %s to %s", o.Status, newStatus)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order status changed concurrently")
		}
		if notes != "" {
			if err := s.Repo.UpdateOrderFields(tx, o.ID, map[string]any{"notes": notes}); err != nil {
				return err
			}
		}
		if newStatus == entity.OrderStatusCancelled {
			lines, err := s.linesFromOrder(o)
			if err != nil {
				return err
			}
			return s.Inventory.Restore(tx, o, lines, actor.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = newStatus
	go s.afterStatusChange(o, newStatus)
	return o, nil
}

func (s *OrderService) afterStatusChange(o *entity.Order, newStatus string) {
	if newStatus == entity.OrderStatusCompleted && s.Printing != nil {
		if err := s.Printing.DispatchReceipt(o, true); err != nil {
			s.Log.WithFields(logrus.Fields{"order": o.OrderNumber}).
				Warnf("final receipt print failed: %v", err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.OrderStatusUpdated(o.BranchID, o.ID, o.OrderNumber, newStatus)
	}
}

// UpdatePaymentStatus settles or reverses payment. Marking PAID twice
// creates exactly one payment record for the settlement.
func (s *OrderService) UpdatePaymentStatus(actor utils.Actor, orderID uint, paymentStatus, paymentMethod string) (*entity.Order, error) {
	switch paymentStatus {
	case entity.PaymentStatusUnpaid, entity.PaymentStatusPaid, entity.PaymentStatusRefunded:
	default:
		return nil, apperr.Validation("unknown payment status %q", paymentStatus)
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, apperr.NotFound("order %d not found", orderID)
	}
	if !actor.CanAccessBranch(o.BranchID) {
		return nil, apperr.Forbidden("no access to this order's branch")
	}

	paid := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if paymentStatus == entity.PaymentStatusPaid {
			// hold the order row so two concurrent settlements cannot
			// both observe zero payments
			if err := s.Repo.LockOrder(tx, o.ID); err != nil {
				return err
			}
			count, err := s.Repo.CountPaymentsForOrder(tx, o.ID)
			if err != nil {
				return err
			}
			if count == 0 {
				p := entity.Payment{
					OrderID:        o.ID,
					Amount:         o.Total,
					Method:         paymentMethod,
					TransactionRef: uuid.NewString(),
					CreatedByID:    actor.UserID,
				}
				if err := s.Repo.CreatePayment(tx, &p); err != nil {
					return err
				}
				paid = true
			}
		}
		return s.Repo.UpdateOrderFields(tx, o.ID, map[string]any{
			"payment_status": paymentStatus,
			"payment_method": paymentMethod,
		})
	})
	if err != nil {
		return nil, err
	}

	o.PaymentStatus = paymentStatus
	o.PaymentMethod = paymentMethod
	go s.afterPaymentChange(o, paid)
	return o, nil
}

func (s *OrderService) afterPaymentChange(o *entity.Order, newlyPaid bool) {
	if newlyPaid && s.Printing != nil {
		if err := s.Printing.DispatchReceipt(o, false); err != nil {
			s.Log.WithFields(logrus.Fields{"order": o.OrderNumber}).
				Warnf("receipt print failed: %v", err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.PaymentStatusUpdated(o.BranchID, o.ID, o.OrderNumber, o.PaymentStatus, o.PaymentMethod)
	}
}

// Delete hard-deletes an order and its items. Admins may delete anywhere,
// managers only in their own branch. Inventory is not restored; cancel the
// order first if the stock should come back.
func (s *OrderService) Delete(actor utils.Actor, orderID uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete orders")
	}
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return apperr.NotFound("order %d not found", orderID)
	}
	if !actor.CanAccessBranch(o.BranchID) {
		return apperr.Forbidden("no access to this order's branch")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, o.ID)
	})
}

// linesFromOrder rebuilds ledger lines from a persisted order so a
// cancellation can restore exactly what creation deducted. Items whose
// menu item has since been deleted are skipped; their ingredient links are
// gone with it.
func (s *OrderService) linesFromOrder(o *entity.Order) ([]LedgerLine, error) {
	var ids []uint
	for _, it := range o.Items {
		if it.MenuItemID != nil {
			ids = append(ids, *it.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	menuItems, err := s.Repo.GetMenuItemsForOrder(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	var lines []LedgerLine
	for _, it := range o.Items {
		if it.MenuItemID == nil {
			continue
		}
		menuItem, ok := byID[*it.MenuItemID]
		if !ok {
			s.Log.WithFields(logrus.Fields{
				"order":    o.OrderNumber,
				"menuItem": *it.MenuItemID,
			}).Warn("menu item deleted since order creation, skipping restore for its line")
			continue
		}
		available := make(map[uint]entity.Modifier, len(menuItem.Modifiers))
		for _, m := range menuItem.Modifiers {
			available[m.ID] = m
		}
		var selected []entity.Modifier
		for _, snap := range it.Modifiers {
			if m, ok := available[snap.ID]; ok {
				selected = append(selected, m)
			}
		}
		lines = append(lines, LedgerLine{
			MenuItem:  menuItem,
			Quantity:  it.Quantity,
			Modifiers: selected,
		})
	}
	return lines, nil
}
