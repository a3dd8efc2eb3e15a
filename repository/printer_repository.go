package repository

import (
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type PrinterRepository struct {
	DB *gorm.DB
}

func NewPrinterRepository(db *gorm.DB) *PrinterRepository {
	return &PrinterRepository{DB: db}
}

// ---------------- Printers ----------------

func (r *PrinterRepository) Create(p *entity.Printer) error {
	return r.DB.Create(p).Error
}

func (r *PrinterRepository) Get(id uint) (*entity.Printer, error) {
	var p entity.Printer
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrinterRepository) List(branchID uint) ([]entity.Printer, error) {
	q := r.DB.Model(&entity.Printer{})
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	var out []entity.Printer
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *PrinterRepository) Update(p *entity.Printer) error {
	return r.DB.Save(p).Error
}

func (r *PrinterRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Printer{}, id).Error
}

// ActiveReceiptPrinters returns the receipt printers of a branch that
// accept jobs. Online is checked at processing time, not here: a printer
// that is merely offline still gets the job so it can fail and be retried.
func (r *PrinterRepository) ActiveReceiptPrinters(branchID uint) ([]entity.Printer, error) {
	var out []entity.Printer
	err := r.DB.Where("branch_id = ? AND type = ? AND active = ?",
		branchID, entity.PrinterTypeReceipt, true).Find(&out).Error
	return out, err
}

// KitchenPrintersForCategory returns the active kitchen printers of a
// branch assigned to the category, plus catch-all printers with no
// category. Online is left to processing, same as the receipt path.
func (r *PrinterRepository) KitchenPrintersForCategory(branchID, categoryID uint) ([]entity.Printer, error) {
	var out []entity.Printer
	err := r.DB.Where("branch_id = ? AND type = ? AND active = ? AND (category_id = ? OR category_id IS NULL)",
		branchID, entity.PrinterTypeKitchen, true, categoryID).Find(&out).Error
	return out, err
}

// ---------------- Print jobs ----------------

func (r *PrinterRepository) CreateJob(j *entity.PrintJob) error {
	return r.DB.Create(j).Error
}

func (r *PrinterRepository) GetJob(id uint) (*entity.PrintJob, error) {
	var j entity.PrintJob
	if err := r.DB.First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *PrinterRepository) ListJobs(branchID uint, status string, page, pageSize int) ([]entity.PrintJob, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	q := r.DB.Model(&entity.PrintJob{})
	if branchID != 0 {
		q = q.Joins("JOIN printers ON printers.id = print_jobs.printer_id").
			Where("printers.branch_id = ?", branchID)
	}
	if status != "" {
		q = q.Where("print_jobs.status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var jobs []entity.PrintJob
	err := q.Order("print_jobs.id DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&jobs).Error
	return jobs, total, err
}

func (r *PrinterRepository) UpdateJob(j *entity.PrintJob) error {
	return r.DB.Save(j).Error
}

// MarkJobStatus flips a job's status and bookkeeping fields.
func (r *PrinterRepository) MarkJobStatus(jobID uint, status, lastError string) error {
	return r.DB.Model(&entity.PrintJob{}).Where("id = ?", jobID).Updates(map[string]any{
		"status":     status,
		"last_error": lastError,
	}).Error
}
