package repository

import (
	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type BranchRepository struct {
	DB *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) Create(b *entity.Branch) error {
	return r.DB.Create(b).Error
}

func (r *BranchRepository) Get(id uint) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) FindByName(name string) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.Where("name = ?", name).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) List() ([]entity.Branch, error) {
	var out []entity.Branch
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *BranchRepository) Update(b *entity.Branch) error {
	return r.DB.Save(b).Error
}

func (r *BranchRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Branch{}, id).Error
}
