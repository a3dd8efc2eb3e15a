package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
)

const ticketWidth = 32

// PrintService fans a committed order out to the branch's printers and
// runs the background consumer that works the job queue. Dispatch is
// best-effort: the order request never waits on a printer.
type PrintService struct {
	Repo      *repository.PrinterRepository
	OrderRepo *repository.OrderRepository
	Log       *logrus.Logger

	jobs chan uint
}

func NewPrintService(repo *repository.PrinterRepository, orderRepo *repository.OrderRepository, log *logrus.Logger) *PrintService {
	return &PrintService{
		Repo:      repo,
		OrderRepo: orderRepo,
		Log:       log,
		jobs:      make(chan uint, 128),
	}
}

// Run consumes queued jobs until the context is cancelled. Call in its own
// goroutine.
func (s *PrintService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-s.jobs:
			s.process(id)
		}
	}
}

func (s *PrintService) process(jobID uint) {
	job, err := s.Repo.GetJob(jobID)
	if err != nil {
		s.Log.Warnf("print job %d vanished: %v", jobID, err)
		return
	}
	if job.Status != entity.PrintJobStatusPending {
		return
	}

	job.Status = entity.PrintJobStatusPrinting
	job.Attempts++
	if err := s.Repo.UpdateJob(job); err != nil {
		s.Log.Warnf("print job %d: %v", jobID, err)
		return
	}

	printer, err := s.Repo.Get(job.PrinterID)
	if err != nil || !printer.Active || !printer.Online {
		job.Status = entity.PrintJobStatusFailed
		job.LastError = "printer unavailable"
		if err := s.Repo.UpdateJob(job); err != nil {
			s.Log.Warnf("print job %d: %v", jobID, err)
		}
		s.Log.WithFields(logrus.Fields{
			"job":     job.ID,
			"printer": job.PrinterID,
		}).Warn("print job failed: printer unavailable")
		return
	}

	// hardware hand-off happens at the driver boundary, which is outside
	// this service; reaching an online printer completes the job
	job.Status = entity.PrintJobStatusCompleted
	job.LastError = ""
	if err := s.Repo.UpdateJob(job); err != nil {
		s.Log.Warnf("print job %d: %v", jobID, err)
	}
}

func (s *PrintService) enqueue(job *entity.PrintJob) error {
	if err := s.Repo.CreateJob(job); err != nil {
		return err
	}
	select {
	case s.jobs <- job.ID:
	default:
		// queue full; the job stays PENDING and can be retried explicitly
		s.Log.WithFields(logrus.Fields{"job": job.ID}).Warn("print queue full")
	}
	return nil
}

// DispatchForOrder enqueues the creation-time jobs: one receipt per active
// receipt printer of the branch, and one kitchen ticket per menu category
// present in the order, to the category's printers or the catch-alls.
func (s *PrintService) DispatchForOrder(order *entity.Order) error {
	if err := s.dispatchReceipts(order, false); err != nil {
		return err
	}

	groups, names, err := s.groupByCategory(order)
	if err != nil {
		return err
	}
	catIDs := make([]uint, 0, len(groups))
	for id := range groups {
		catIDs = append(catIDs, id)
	}
	sort.Slice(catIDs, func(i, j int) bool { return catIDs[i] < catIDs[j] })

	for _, catID := range catIDs {
		printers, err := s.Repo.KitchenPrintersForCategory(order.BranchID, catID)
		if err != nil {
			return err
		}
		content := renderKitchenTicket(order, names[catID], groups[catID])
		for _, p := range printers {
			job := &entity.PrintJob{
				PrinterID:   p.ID,
				JobType:     entity.PrintJobTypeKitchenTicket,
				ReferenceID: order.ID,
				Content:     content,
				Status:      entity.PrintJobStatusPending,
			}
			if err := s.enqueue(job); err != nil {
				return err
			}
		}
	}
	return nil
}

// DispatchReceipt enqueues a receipt-only print, used when payment settles
// and again (marked final) when the order completes.
func (s *PrintService) DispatchReceipt(order *entity.Order, final bool) error {
	return s.dispatchReceipts(order, final)
}

func (s *PrintService) dispatchReceipts(order *entity.Order, final bool) error {
	printers, err := s.Repo.ActiveReceiptPrinters(order.BranchID)
	if err != nil {
		return err
	}
	content := renderReceipt(order, final)
	for _, p := range printers {
		job := &entity.PrintJob{
			PrinterID:   p.ID,
			JobType:     entity.PrintJobTypeReceipt,
			ReferenceID: order.ID,
			Content:     content,
			Status:      entity.PrintJobStatusPending,
		}
		if err := s.enqueue(job); err != nil {
			return err
		}
	}
	return nil
}

// RetryJob puts a failed job back on the queue, up to the attempt ceiling.
func (s *PrintService) RetryJob(jobID uint) (*entity.PrintJob, error) {
	job, err := s.Repo.GetJob(jobID)
	if err != nil {
		return nil, apperr.NotFound("print job %d not found", jobID)
	}
	if job.Status != entity.PrintJobStatusFailed {
		return nil, apperr.Conflict("only failed jobs can be retried")
	}
	if job.Attempts >= entity.MaxPrintAttempts {
		return nil, apperr.Conflict("print job %d exhausted its %d attempts", jobID, entity.MaxPrintAttempts)
	}
	job.Status = entity.PrintJobStatusPending
	job.LastError = ""
	if err := s.Repo.UpdateJob(job); err != nil {
		return nil, err
	}
	select {
	case s.jobs <- job.ID:
	default:
		s.Log.WithFields(logrus.Fields{"job": job.ID}).Warn("print queue full")
	}
	return job, nil
}

// groupByCategory buckets the order's lines by menu category for kitchen
// ticketing. Lines whose menu item is gone fall into the zero category,
// which routes to catch-all printers only.
func (s *PrintService) groupByCategory(order *entity.Order) (map[uint][]entity.OrderItem, map[uint]string, error) {
	var ids []uint
	for _, it := range order.Items {
		if it.MenuItemID != nil {
			ids = append(ids, *it.MenuItemID)
		}
	}
	categoryOf := map[uint]uint{}
	names := map[uint]string{}
	if len(ids) > 0 {
		menuItems, err := s.OrderRepo.GetMenuItemsForOrder(ids)
		if err != nil {
			return nil, nil, err
		}
		for _, m := range menuItems {
			categoryOf[m.ID] = m.CategoryID
			names[m.CategoryID] = m.Category.Name
		}
	}

	groups := map[uint][]entity.OrderItem{}
	for _, it := range order.Items {
		var catID uint
		if it.MenuItemID != nil {
			catID = categoryOf[*it.MenuItemID]
		}
		groups[catID] = append(groups[catID], it)
	}
	return groups, names, nil
}

// ----- rendering -----

func center(s string) string {
	if len(s) >= ticketWidth {
		return s
	}
	pad := (ticketWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func row(left, right string) string {
	gap := ticketWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderReceipt(order *entity.Order, final bool) string {
	var b strings.Builder
	line := strings.Repeat("-", ticketWidth)

	title := "RECEIPT"
	if final {
		title = "FINAL RECEIPT"
	}
	b.WriteString(center(title) + "\n")
	b.WriteString(center(order.OrderNumber) + "\n")
	if order.TableNumber != "" {
		b.WriteString(center("Table "+order.TableNumber) + "\n")
	} else if order.CustomerName != "" {
		b.WriteString(center(order.CustomerName) + "\n")
	}
	b.WriteString(line + "\n")
	for _, it := range order.Items {
		b.WriteString(row(fmt.Sprintf("%dx %s", it.Quantity, it.Name), it.Total.StringFixed(2)) + "\n")
		for _, m := range it.Modifiers {
			b.WriteString("  + " + m.Name + "\n")
		}
	}
	b.WriteString(line + "\n")
	b.WriteString(row("Subtotal", order.Subtotal.StringFixed(2)) + "\n")
	b.WriteString(row("Tax", order.Tax.StringFixed(2)) + "\n")
	if order.Discount.IsPositive() {
		b.WriteString(row("Discount", "-"+order.Discount.StringFixed(2)) + "\n")
	}
	b.WriteString(row("TOTAL", order.Total.StringFixed(2)) + "\n")
	if order.PaymentStatus == entity.PaymentStatusPaid {
		b.WriteString(row("Paid", order.PaymentMethod) + "\n")
	}
	return b.String()
}

func renderKitchenTicket(order *entity.Order, category string, items []entity.OrderItem) string {
	var b strings.Builder
	line := strings.Repeat("-", ticketWidth)

	b.WriteString(center("KITCHEN") + "\n")
	b.WriteString(center(order.OrderNumber) + "\n")
	if category != "" {
		b.WriteString(center(category) + "\n")
	}
	if order.TableNumber != "" {
		b.WriteString(center("Table "+order.TableNumber) + "\n")
	}
	b.WriteString(line + "\n")
	for _, it := range items {
		b.WriteString(fmt.Sprintf("%dx %s\n", it.Quantity, it.Name))
		for _, m := range it.Modifiers {
			b.WriteString("  + " + m.Name + "\n")
		}
		if it.Notes != "" {
			b.WriteString("  ! " + it.Notes + "\n")
		}
	}
	return b.String()
}
