package repository

import (
	"shiftportal/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(shift *model.Shift) error
	GetByID(id string) (*model.Shift, error)
	GetByIDAndOwner(id string, username string) (*model.Shift, error)
	GetAll() ([]model.Shift, error)
	Update(shift *model.Shift) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) GetByID(id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Where("id = ?", id).First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByIDAndOwner only matches a shift the given staff member owns, so one
// staff member can never close another's shift.
func (r *shiftRepository) GetByIDAndOwner(id string, username string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Where("id = ? AND username = ?", id, username).First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var list []model.Shift
	err := r.db.Order("clock_in_time asc").Find(&list).Error
	return list, err
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return r.db.Save(shift).Error
}
