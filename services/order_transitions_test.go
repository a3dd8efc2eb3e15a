package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
)

func (f *fixture) placeOrder(t *testing.T, lines ...OrderLineIn) *entity.Order {
	t.Helper()
	order, err := f.orders.Create(f.manager(), &CreateOrderReq{
		Items:       lines,
		OrderType:   entity.OrderTypeDineIn,
		TableNumber: "9",
	})
	require.NoError(t, err)
	return order
}

func TestUpdateStatusHappyPath(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	for _, next := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusCompleted,
	} {
		updated, err := f.orders.UpdateStatus(f.manager(), order.ID, next, "")
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestUpdateStatusStrictRejectsSkips(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	// PENDING cannot jump straight to READY in strict mode
	_, err := f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusReady, "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateStatusLenientMode(t *testing.T) {
	f := newFixture(t)
	f.orders.StrictTransitions = false
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	// skips are allowed, terminal protection still holds
	updated, err := f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	_, err = f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusPending, "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateStatusTerminalIsFinal(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	_, err := f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusCancelled, "")
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusPreparing, "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	_, err := f.orders.UpdateStatus(f.manager(), order.ID, "BURNED", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateStatusKitchenStaffAllowed(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	updated, err := f.orders.UpdateStatus(f.kitchen(), order.ID, entity.OrderStatusConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestCancelRestoresInventory(t *testing.T) {
	f := newFixture(t)
	dough := f.addInventory("Dough", "20", "2")
	cheese := f.addInventory("Cheese", "20", "2")
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0",
		cat, ingredientSpec{dough, "1"}, ingredientSpec{cheese, "2"})
	extra := f.addModifier("Extra Cheese", "2.00", pizza, ingredientSpec{cheese, "1"})

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 2, Modifiers: []uint{extra.ID}})
	assert.Equal(t, "18", f.inventoryQty(dough.ID).String())
	assert.Equal(t, "14", f.inventoryQty(cheese.ID).String())

	_, err := f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusCancelled, "customer left")
	require.NoError(t, err)

	assert.Equal(t, "20", f.inventoryQty(dough.ID).String())
	assert.Equal(t, "20", f.inventoryQty(cheese.ID).String())

	// the audit trail holds both directions
	var types []string
	require.NoError(t, f.db.Model(&entity.InventoryTransaction{}).
		Where("reference = ?", order.OrderNumber).
		Order("id ASC").Pluck("type", &types).Error)
	assert.Equal(t, []string{
		entity.InventoryTxOutgoing, entity.InventoryTxOutgoing,
		entity.InventoryTxIncoming, entity.InventoryTxIncoming,
	}, types)
}

func TestMarkPaidCreatesExactlyOnePayment(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "10", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 2})

	updated, err := f.orders.UpdatePaymentStatus(f.manager(), order.ID, entity.PaymentStatusPaid, entity.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)

	// marking PAID again must not add a second settlement record
	_, err = f.orders.UpdatePaymentStatus(f.manager(), order.ID, entity.PaymentStatusPaid, entity.PaymentMethodCard)
	require.NoError(t, err)

	var payments []entity.Payment
	require.NoError(t, f.db.Where("order_id = ?", order.ID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(order.Total))
	assert.NotEmpty(t, payments[0].TransactionRef)
}

func TestUpdatePaymentStatusUnknownValue(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	_, err := f.orders.UpdatePaymentStatus(f.manager(), order.ID, "IOU", entity.PaymentMethodCash)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteOrderDoesNotRestoreInventory(t *testing.T) {
	f := newFixture(t)
	cheese := f.addInventory("Cheese", "20", "2")
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat, ingredientSpec{cheese, "2"})
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 3})
	assert.Equal(t, "14", f.inventoryQty(cheese.ID).String())

	require.NoError(t, f.orders.Delete(f.manager(), order.ID))

	assert.Equal(t, "14", f.inventoryQty(cheese.ID).String())
	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, f.db.Unscoped().Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteOrderKitchenStaffForbidden(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})

	err := f.orders.Delete(f.kitchen(), order.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
}

func TestUpdateStatusForeignBranchForbidden(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)

	order, err := f.orders.Create(f.admin(), &CreateOrderReq{
		Items:       []OrderLineIn{{MenuItemID: pizza.ID, Quantity: 1}},
		OrderType:   entity.OrderTypeDineIn,
		TableNumber: "1",
		BranchName:  "Uptown",
	})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(f.manager(), order.ID, entity.OrderStatusConfirmed, "")
	require.Error(t, err)
	assert.True(t, apperr.IsForbidden(err))
}
