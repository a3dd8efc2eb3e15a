package services

import (
	"github.com/shopspring/decimal"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/apperr"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/repository"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- Categories -----

type CategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (s *MenuService) CreateCategory(actor utils.Actor, req *CategoryReq) (*entity.MenuCategory, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage the menu")
	}
	c := &entity.MenuCategory{Name: req.Name, Description: req.Description, SortOrder: req.SortOrder}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, apperr.Conflict("category %q already exists", req.Name)
	}
	return c, nil
}

func (s *MenuService) ListCategories() ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) UpdateCategory(actor utils.Actor, id uint, req *CategoryReq) (*entity.MenuCategory, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage the menu")
	}
	c, err := s.Repo.GetCategory(id)
	if err != nil {
		return nil, apperr.NotFound("category %d not found", id)
	}
	c.Name = req.Name
	c.Description = req.Description
	c.SortOrder = req.SortOrder
	if err := s.Repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *MenuService) DeleteCategory(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete categories")
	}
	if _, err := s.Repo.GetCategory(id); err != nil {
		return apperr.NotFound("category %d not found", id)
	}
	return s.Repo.DeleteCategory(id)
}

// ----- Menu items -----

type IngredientIn struct {
	InventoryItemID uint            `json:"inventoryItemId" binding:"required"`
	QuantityPerUnit decimal.Decimal `json:"quantityPerUnit" binding:"required,gt=0"`
}

type MenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	Cost        decimal.Decimal `json:"cost"`
	TaxRate     decimal.Decimal `json:"taxRate" binding:"omitempty,gte=0,lte=100"`
	TaxExempt   bool            `json:"taxExempt"`
	Active      *bool           `json:"active"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	BranchID    *uint           `json:"branchId"`
	Ingredients []IngredientIn  `json:"ingredients" binding:"dive"`
	ModifierIDs []uint          `json:"modifierIds"`
}

func (s *MenuService) CreateMenuItem(actor utils.Actor, req *MenuItemReq) (*entity.MenuItem, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage the menu")
	}
	if _, err := s.Repo.GetCategory(req.CategoryID); err != nil {
		return nil, apperr.NotFound("category %d not found", req.CategoryID)
	}
	branchID, err := resolveMenuBranch(actor, req.BranchID)
	if err != nil {
		return nil, err
	}

	m := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		TaxRate:     req.TaxRate,
		TaxExempt:   req.TaxExempt,
		Active:      true,
		CategoryID:  req.CategoryID,
		BranchID:    branchID,
	}
	if req.Active != nil {
		m.Active = *req.Active
	}
	if err := s.Repo.CreateMenuItem(m); err != nil {
		return nil, err
	}
	if err := s.applyLinks(m, req); err != nil {
		return nil, err
	}
	return s.Repo.GetMenuItem(m.ID)
}

func (s *MenuService) applyLinks(m *entity.MenuItem, req *MenuItemReq) error {
	if req.Ingredients != nil {
		ingredients := make([]entity.MenuItemIngredient, 0, len(req.Ingredients))
		for _, in := range req.Ingredients {
			ingredients = append(ingredients, entity.MenuItemIngredient{
				InventoryItemID: in.InventoryItemID,
				QuantityPerUnit: in.QuantityPerUnit,
			})
		}
		if err := s.Repo.ReplaceIngredients(m.ID, ingredients); err != nil {
			return err
		}
	}
	if req.ModifierIDs != nil {
		if err := s.Repo.SetModifiers(m, req.ModifierIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *MenuService) GetMenuItem(actor utils.Actor, id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		return nil, apperr.NotFound("menu item %d not found", id)
	}
	if m.BranchID != nil && !actor.CanAccessBranch(*m.BranchID) {
		return nil, apperr.Forbidden("no access to this menu item's branch")
	}
	return m, nil
}

func (s *MenuService) ListMenuItems(actor utils.Actor, branchID, categoryID uint, activeOnly bool) ([]entity.MenuItem, error) {
	if !actor.IsAdmin() {
		branchID = actor.BranchID
	}
	return s.Repo.ListMenuItems(branchID, categoryID, activeOnly)
}

func (s *MenuService) UpdateMenuItem(actor utils.Actor, id uint, req *MenuItemReq) (*entity.MenuItem, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage the menu")
	}
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		return nil, apperr.NotFound("menu item %d not found", id)
	}
	if m.BranchID != nil && !actor.CanAccessBranch(*m.BranchID) {
		return nil, apperr.Forbidden("no access to this menu item's branch")
	}
	if m.BranchID == nil && !actor.IsAdmin() {
		return nil, apperr.Forbidden("only admins can edit global menu items")
	}

	m.Name = req.Name
	m.Description = req.Description
	m.Price = req.Price
	m.Cost = req.Cost
	m.TaxRate = req.TaxRate
	m.TaxExempt = req.TaxExempt
	m.CategoryID = req.CategoryID
	if req.Active != nil {
		m.Active = *req.Active
	}
	if err := s.Repo.UpdateMenuItem(m); err != nil {
		return nil, err
	}
	if err := s.applyLinks(m, req); err != nil {
		return nil, err
	}
	return s.Repo.GetMenuItem(m.ID)
}

func (s *MenuService) DeleteMenuItem(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete menu items")
	}
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		return apperr.NotFound("menu item %d not found", id)
	}
	if m.BranchID != nil && !actor.CanAccessBranch(*m.BranchID) {
		return apperr.Forbidden("no access to this menu item's branch")
	}
	return s.Repo.DeleteMenuItem(id)
}

// resolveMenuBranch pins branch-scoped managers to their own branch;
// admins may create global items (nil branch) or target any branch.
func resolveMenuBranch(actor utils.Actor, requested *uint) (*uint, error) {
	if actor.IsAdmin() {
		return requested, nil
	}
	if requested != nil && *requested != actor.BranchID {
		return nil, apperr.Forbidden("no access to branch %d", *requested)
	}
	if actor.BranchID == 0 {
		return nil, apperr.Validation("actor has no assigned branch")
	}
	own := actor.BranchID
	return &own, nil
}

// ----- Modifiers -----

type ModifierReq struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Active      *bool           `json:"active"`
	Ingredients []IngredientIn  `json:"ingredients" binding:"dive"`
}

func (s *MenuService) CreateModifier(actor utils.Actor, req *ModifierReq) (*entity.Modifier, error) {
	if actor.IsKitchen() {
		return nil, apperr.Forbidden("kitchen staff cannot manage the menu")
	}
	m := &entity.Modifier{Name: req.Name, Price: req.Price, Active: true}
	if req.Active != nil {
		m.Active = *req.Active
	}
	for _, in := range req.Ingredients {
		m.Ingredients = append(m.Ingredients, entity.ModifierIngredient{
			InventoryItemID: in.InventoryItemID,
			QuantityPerUnit: in.QuantityPerUnit,
		})
	}
	if err := s.Repo.CreateModifier(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) ListModifiers() ([]entity.Modifier, error) {
	return s.Repo.ListModifiers()
}

func (s *MenuService) DeleteModifier(actor utils.Actor, id uint) error {
	if !actor.IsAdmin() && !actor.IsManager() {
		return apperr.Forbidden("only admins and managers can delete modifiers")
	}
	if _, err := s.Repo.GetModifier(id); err != nil {
		return apperr.NotFound("modifier %d not found", id)
	}
	return s.Repo.DeleteModifier(id)
}
