package services

import (
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// Printer administration: CRUD and job listing around the dispatch queue.

type PrinterReq struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=RECEIPT KITCHEN"`
	Address    string `json:"address"`
	Active     *bool  `json:"active"`
	Online     *bool  `json:"online"`
	BranchID   uint   `json:"branchId"`
	CategoryID *uint  `json:"categoryId"`
}

func (s *PrintService) CreatePrinter(actor utils.Actor, req *PrinterReq) (*entity.Printer, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage printers")
	}
	branchID := req.BranchID
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	if branchID == 0 {
		return nil, apperr.Validation("branchId is required")
	}
	if req.Type == entity.PrinterTypeReceipt && req.CategoryID != nil {
		return nil, apperr.Validation("category assignment is for kitchen printers only")
	}

	p := &entity.Printer{
		Name:       req.Name,
		Type:       req.Type,
		Address:    req.Address,
		Active:     true,
		Online:     true,
		BranchID:   branchID,
		CategoryID: req.CategoryID,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.Online != nil {
		p.Online = *req.Online
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrintService) ListPrinters(actor utils.Actor, branchID uint) ([]entity.Printer, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	return s.Repo.List(branchID)
}

func (s *PrintService) UpdatePrinter(actor utils.Actor, id uint, req *PrinterReq) (*entity.Printer, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage printers")
	}
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, apperr.NotFound("printer %d not found", id)
	}
	if !actor.CanAccessBranch(p.BranchID) {
		return nil, apperr.Forbidden("no access to this printer's branch")
	}

	p.Name = req.Name
	p.Type = req.Type
	p.Address = req.Address
	p.CategoryID = req.CategoryID
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.Online != nil {
		p.Online = *req.Online
	}
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrintService) DeletePrinter(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete printers")
	}
	p, err := s.Repo.Get(id)
	if err != nil {
		return apperr.NotFound("printer %d not found", id)
	}
	if !actor.CanAccessBranch(p.BranchID) {
		return apperr.Forbidden("no access to this printer's branch")
	}
	return s.Repo.Delete(id)
}

type PrintJobListOut struct {
	Items    []entity.PrintJob `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

func (s *PrintService) ListJobs(actor utils.Actor, branchID uint, status string, page, pageSize int) (*PrintJobListOut, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	jobs, total, err := s.Repo.ListJobs(branchID, status, page, pageSize)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	return &PrintJobListOut{Items: jobs, Total: total, Page: page, PageSize: pageSize}, nil
}

// RetryJobChecked wraps RetryJob with the branch access check.
func (s *PrintService) RetryJobChecked(actor utils.Actor, jobID uint) (*entity.PrintJob, error) {
	job, err := s.Repo.GetJob(jobID)
	if err != nil {
		return nil, apperr.NotFound("print job %d not found", jobID)
	}
	printer, err := s.Repo.Get(job.PrinterID)
	if err == nil && !actor.CanAccessBranch(printer.BranchID) {
		return nil, apperr.Forbidden("no access to this job's branch")
	}
	return s.RetryJob(jobID)
}
