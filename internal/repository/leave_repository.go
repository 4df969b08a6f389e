package repository

import (
	"shiftportal/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(request *model.LeaveRequest) error
	GetByID(id string) (*model.LeaveRequest, error)
	GetAll() ([]model.LeaveRequest, error)
	Update(request *model.LeaveRequest) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(request *model.LeaveRequest) error {
	return r.db.Create(request).Error
}

func (r *leaveRepository) GetByID(id string) (*model.LeaveRequest, error) {
	var request model.LeaveRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) GetAll() ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Order("submitted_on asc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) Update(request *model.LeaveRequest) error {
	return r.db.Save(request).Error
}
