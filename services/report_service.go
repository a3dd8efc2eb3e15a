package services

import (
	"time"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// scope forces non-admins onto their own branch.
func reportScope(actor utils.Actor, branchID uint) (uint, error) {
	if actor.IsAdmin() {
		return branchID, nil
	}
	if branchID != 0 && branchID != actor.BranchID {
		return 0, apperr.Forbidden("no access to branch %d", branchID)
	}
	return actor.BranchID, nil
}

type SalesReport struct {
	Days      []repository.DailySales       `json:"days"`
	OrderType []repository.OrderTypeCount   `json:"orderTypes"`
}

func (s *ReportService) Sales(actor utils.Actor, branchID uint, start, end time.Time) (*SalesReport, error) {
	branchID, err := reportScope(actor, branchID)
	if err != nil {
		return nil, err
	}
	days, err := s.Repo.SalesByDay(branchID, start, end)
	if err != nil {
		return nil, err
	}
	types, err := s.Repo.OrderTypeBreakdown(branchID, start, end)
	if err != nil {
		return nil, err
	}
	return &SalesReport{Days: days, OrderType: types}, nil
}

func (s *ReportService) TopItems(actor utils.Actor, branchID uint, start, end time.Time, limit int) ([]repository.TopItem, error) {
	branchID, err := reportScope(actor, branchID)
	if err != nil {
		return nil, err
	}
	return s.Repo.TopItems(branchID, start, end, limit)
}
