package entity

import (
	"gorm.io/gorm"
)

const (
	PrintJobStatusPending   = "PENDING"
	PrintJobStatusPrinting  = "PRINTING"
	PrintJobStatusCompleted = "COMPLETED"
	PrintJobStatusFailed    = "FAILED"
)

const (
	PrintJobTypeReceipt       = "RECEIPT"
	PrintJobTypeKitchenTicket = "KITCHEN_TICKET"
)

// MaxPrintAttempts caps retries of a failed job.
const MaxPrintAttempts = 3

type PrintJob struct {
	gorm.Model
	PrinterID uint    `gorm:"index" json:"printerId"`
	Printer   Printer `json:"-"`

	JobType string `gorm:"not null" json:"jobType"`
	// the order the job was rendered from
	ReferenceID uint   `gorm:"index" json:"referenceId"`
	Content     string `gorm:"type:text" json:"content"`
	Status      string `gorm:"default:PENDING;index" json:"status"`
	Attempts    int    `gorm:"default:0" json:"attempts"`
	LastError   string `json:"lastError"`
}
