package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type ShiftService struct {
	Repo *repository.ShiftRepository
}

func NewShiftService(repo *repository.ShiftRepository) *ShiftService {
	return &ShiftService{Repo: repo}
}

// ClockIn opens a shift; a user can only have one open at a time.
func (s *ShiftService) ClockIn(actor utils.Actor, branchID uint) (*entity.Shift, error) {
	if _, err := s.Repo.OpenShift(actor.UserID); err == nil {
		return nil, apperr.Conflict("already clocked in")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	if branchID == 0 {
		return nil, apperr.Validation("branchId is required")
	}

	shift := &entity.Shift{
		UserID:   actor.UserID,
		BranchID: branchID,
		ClockIn:  time.Now(),
	}
	if err := s.Repo.Create(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *ShiftService) ClockOut(actor utils.Actor, notes string) (*entity.Shift, error) {
	shift, err := s.Repo.OpenShift(actor.UserID)
	if err != nil {
		return nil, apperr.NotFound("no open shift")
	}
	now := time.Now()
	shift.ClockOut = &now
	shift.Minutes = int(now.Sub(shift.ClockIn).Minutes())
	shift.Notes = notes
	if err := s.Repo.Update(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *ShiftService) List(actor utils.Actor, branchID uint, start, end *time.Time) ([]entity.Shift, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	return s.Repo.List(branchID, start, end)
}
