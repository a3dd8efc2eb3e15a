package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

type ShiftRepository struct {
	DB *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{DB: db}
}

func (r *ShiftRepository) Create(s *entity.Shift) error {
	return r.DB.Create(s).Error
}

// OpenShift returns the user's shift without a clock-out, if any.
func (r *ShiftRepository) OpenShift(userID uint) (*entity.Shift, error) {
	var s entity.Shift
	err := r.DB.Where("user_id = ? AND clock_out IS NULL", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepository) Update(s *entity.Shift) error {
	return r.DB.Save(s).Error
}

func (r *ShiftRepository) List(branchID uint, start, end *time.Time) ([]entity.Shift, error) {
	q := r.DB.Model(&entity.Shift{})
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	if start != nil {
		q = q.Where("clock_in >= ?", *start)
	}
	if end != nil {
		q = q.Where("clock_in <= ?", *end)
	}
	var out []entity.Shift
	err := q.Order("clock_in DESC").Find(&out).Error
	return out, err
}
