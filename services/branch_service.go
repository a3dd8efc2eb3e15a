package services

import (
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type BranchService struct {
	Repo *repository.BranchRepository
}

func NewBranchService(repo *repository.BranchRepository) *BranchService {
	return &BranchService{Repo: repo}
}

type BranchReq struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Active       *bool  `json:"active"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

func (s *BranchService) Create(actor utils.Actor, req *BranchReq) (*entity.Branch, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can create branches")
	}
	b := &entity.Branch{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Active:       true,
		RestaurantID: req.RestaurantID,
	}
	if req.Active != nil {
		b.Active = *req.Active
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, apperr.Conflict("branch %q already exists", req.Name)
	}
	return b, nil
}

func (s *BranchService) Get(actor utils.Actor, id uint) (*entity.Branch, error) {
	b, err := s.Repo.Get(id)
	if err != nil {
		return nil, apperr.NotFound("branch %d not found", id)
	}
	if !actor.CanAccessBranch(b.ID) {
		return nil, apperr.Forbidden("no access to branch %q", b.Name)
	}
	return b, nil
}

// List: admins see every branch, everyone else only their own.
func (s *BranchService) List(actor utils.Actor) ([]entity.Branch, error) {
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return all, nil
	}
	out := make([]entity.Branch, 0, 1)
	for _, b := range all {
		if b.ID == actor.BranchID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BranchService) Update(actor utils.Actor, id uint, req *BranchReq) (*entity.Branch, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can update branches")
	}
	b, err := s.Repo.Get(id)
	if err != nil {
		return nil, apperr.NotFound("branch %d not found", id)
	}
	b.Name = req.Name
	b.Address = req.Address
	b.Phone = req.Phone
	b.RestaurantID = req.RestaurantID
	if req.Active != nil {
		b.Active = *req.Active
	}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BranchService) Delete(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() {
		return apperr.Forbidden("only admins can delete branches")
	}
	if _, err := s.Repo.Get(id); err != nil {
		return apperr.NotFound("branch %d not found", id)
	}
	return s.Repo.Delete(id)
}
