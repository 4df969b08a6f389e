package repository

import (
	"shiftportal/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	FindByUsername(username string) (*model.Staff, error)
	ListByRole(role string) ([]model.Staff, error)
	Create(staff *model.Staff) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) FindByUsername(username string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Where("username = ?", username).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) ListByRole(role string) ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Where("role = ?", role).Order("username asc").Find(&list).Error
	return list, err
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}
