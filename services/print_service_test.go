package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
)

// drain works every queued job synchronously so assertions see final
// states without the background consumer.
func (f *fixture) drain() {
	for {
		select {
		case id := <-f.printing.jobs:
			f.printing.process(id)
		default:
			return
		}
	}
}

func (f *fixture) jobsFor(t *testing.T, orderID uint) []entity.PrintJob {
	t.Helper()
	var jobs []entity.PrintJob
	require.NoError(t, f.db.Where("reference_id = ?", orderID).Order("id ASC").Find(&jobs).Error)
	return jobs
}

func TestDispatchForOrderFansOutByPrinterType(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	receipt := f.addPrinter(entity.PrinterTypeReceipt, nil, true, true)
	kitchen := f.addPrinter(entity.PrinterTypeKitchen, &cat.ID, true, true)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 2, Notes: "no basil"})
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()

	jobs := f.jobsFor(t, order.ID)
	require.Len(t, jobs, 2)

	byPrinter := map[uint]entity.PrintJob{}
	for _, j := range jobs {
		byPrinter[j.PrinterID] = j
	}
	r := byPrinter[receipt.ID]
	assert.Equal(t, entity.PrintJobTypeReceipt, r.JobType)
	assert.Equal(t, entity.PrintJobStatusCompleted, r.Status)
	assert.Contains(t, r.Content, "RECEIPT")
	assert.Contains(t, r.Content, order.OrderNumber)
	assert.Contains(t, r.Content, "TOTAL")

	k := byPrinter[kitchen.ID]
	assert.Equal(t, entity.PrintJobTypeKitchenTicket, k.JobType)
	assert.Contains(t, k.Content, "KITCHEN")
	assert.Contains(t, k.Content, "2x Margherita")
	assert.Contains(t, k.Content, "no basil")
	assert.NotContains(t, k.Content, "TOTAL")
}

func TestKitchenTicketsRoutePerCategoryWithCatchAll(t *testing.T) {
	f := newFixture(t)
	pizzaCat := f.addCategory("Pizza")
	drinksCat := f.addCategory("Drinks")
	pizza := f.addMenuItem("Margherita", "10.00", "0", pizzaCat)
	cola := f.addMenuItem("Cola", "2.50", "0", drinksCat)

	pizzaPrinter := f.addPrinter(entity.PrinterTypeKitchen, &pizzaCat.ID, true, true)
	catchAll := f.addPrinter(entity.PrinterTypeKitchen, nil, true, true)

	order := f.placeOrder(t,
		OrderLineIn{MenuItemID: pizza.ID, Quantity: 1},
		OrderLineIn{MenuItemID: cola.ID, Quantity: 2},
	)
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()

	jobs := f.jobsFor(t, order.ID)
	// pizza ticket to its dedicated printer and the catch-all,
	// drinks ticket only to the catch-all
	require.Len(t, jobs, 3)

	var pizzaJobs, catchAllJobs []entity.PrintJob
	for _, j := range jobs {
		switch j.PrinterID {
		case pizzaPrinter.ID:
			pizzaJobs = append(pizzaJobs, j)
		case catchAll.ID:
			catchAllJobs = append(catchAllJobs, j)
		}
	}
	require.Len(t, pizzaJobs, 1)
	assert.Contains(t, pizzaJobs[0].Content, "Margherita")
	assert.NotContains(t, pizzaJobs[0].Content, "Cola")

	require.Len(t, catchAllJobs, 2)
	contents := catchAllJobs[0].Content + catchAllJobs[1].Content
	assert.Contains(t, contents, "Margherita")
	assert.Contains(t, contents, "Cola")
}

func TestInactivePrintersReceiveNothing(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	f.addPrinter(entity.PrinterTypeReceipt, nil, false, true)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()

	assert.Empty(t, f.jobsFor(t, order.ID))
}

func TestOfflinePrinterFailsJobAndRetryWorks(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	printer := f.addPrinter(entity.PrinterTypeReceipt, nil, true, false)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()

	jobs := f.jobsFor(t, order.ID)
	require.Len(t, jobs, 1)
	assert.Equal(t, entity.PrintJobStatusFailed, jobs[0].Status)
	assert.Equal(t, "printer unavailable", jobs[0].LastError)
	assert.Equal(t, 1, jobs[0].Attempts)

	// printer comes back, retry succeeds
	require.NoError(t, f.db.Model(printer).Update("online", true).Error)
	_, err := f.printing.RetryJob(jobs[0].ID)
	require.NoError(t, err)
	f.drain()

	jobs = f.jobsFor(t, order.ID)
	assert.Equal(t, entity.PrintJobStatusCompleted, jobs[0].Status)
	assert.Empty(t, jobs[0].LastError)
	assert.Equal(t, 2, jobs[0].Attempts)
}

func TestRetryCeiling(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	f.addPrinter(entity.PrinterTypeReceipt, nil, true, false)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()
	jobs := f.jobsFor(t, order.ID)
	require.Len(t, jobs, 1)
	jobID := jobs[0].ID

	for i := 0; i < entity.MaxPrintAttempts-1; i++ {
		_, err := f.printing.RetryJob(jobID)
		require.NoError(t, err)
		f.drain()
	}

	_, err := f.printing.RetryJob(jobID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestRetryOnlyFailedJobs(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	f.addPrinter(entity.PrinterTypeReceipt, nil, true, true)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})
	require.NoError(t, f.printing.DispatchForOrder(order))
	f.drain()

	jobs := f.jobsFor(t, order.ID)
	require.Len(t, jobs, 1)
	require.Equal(t, entity.PrintJobStatusCompleted, jobs[0].Status)

	_, err := f.printing.RetryJob(jobs[0].ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestFinalReceiptMarked(t *testing.T) {
	f := newFixture(t)
	cat := f.addCategory("Pizza")
	pizza := f.addMenuItem("Margherita", "10.00", "0", cat)
	f.addPrinter(entity.PrinterTypeReceipt, nil, true, true)

	order := f.placeOrder(t, OrderLineIn{MenuItemID: pizza.ID, Quantity: 1})
	require.NoError(t, f.printing.DispatchReceipt(order, true))
	f.drain()

	jobs := f.jobsFor(t, order.ID)
	require.Len(t, jobs, 1)
	assert.Contains(t, jobs[0].Content, "FINAL RECEIPT")
}
