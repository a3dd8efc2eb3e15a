package repository

import (
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) GetCategory(id uint) (*entity.MenuCategory, error) {
	var c entity.MenuCategory
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	err := r.DB.Order("sort_order ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) UpdateCategory(c *entity.MenuCategory) error {
	return r.DB.Save(c).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.MenuCategory{}, id).Error
}

// ---------------- Menu items ----------------

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.
		Preload("Ingredients.InventoryItem").
		Preload("Modifiers.Ingredients.InventoryItem").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMenuItems returns items visible to a branch: its own plus globals.
func (r *MenuRepository) ListMenuItems(branchID uint, categoryID uint, activeOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Preload("Modifiers")
	if branchID != 0 {
		q = q.Where("branch_id = ? OR branch_id IS NULL", branchID)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []entity.MenuItem
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) UpdateMenuItem(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) ReplaceIngredients(menuItemID uint, ingredients []entity.MenuItemIngredient) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("menu_item_id = ?", menuItemID).Delete(&entity.MenuItemIngredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].MenuItemID = menuItemID
			if err := tx.Create(&ingredients[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MenuRepository) SetModifiers(m *entity.MenuItem, modifierIDs []uint) error {
	var mods []entity.Modifier
	if len(modifierIDs) > 0 {
		if err := r.DB.Where("id IN ?", modifierIDs).Find(&mods).Error; err != nil {
			return err
		}
	}
	return r.DB.Model(m).Association("Modifiers").Replace(mods)
}

// ---------------- Modifiers ----------------

func (r *MenuRepository) CreateModifier(m *entity.Modifier) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) GetModifier(id uint) (*entity.Modifier, error) {
	var m entity.Modifier
	if err := r.DB.Preload("Ingredients.InventoryItem").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListModifiers() ([]entity.Modifier, error) {
	var out []entity.Modifier
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) UpdateModifier(m *entity.Modifier) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) DeleteModifier(id uint) error {
	return r.DB.Delete(&entity.Modifier{}, id).Error
}
