package repository

import (
	"shiftportal/internal/model"

	"gorm.io/gorm"
)

type ShiftChangeRepository interface {
	Create(request *model.ShiftChangeRequest) error
	GetByID(id string) (*model.ShiftChangeRequest, error)
	GetByIDAndTarget(id string, username string) (*model.ShiftChangeRequest, error)
	GetAll() ([]model.ShiftChangeRequest, error)
	Update(request *model.ShiftChangeRequest) error
}

type shiftChangeRepository struct {
	db *gorm.DB
}

func NewShiftChangeRepository(db *gorm.DB) ShiftChangeRepository {
	return &shiftChangeRepository{db}
}

func (r *shiftChangeRepository) Create(request *model.ShiftChangeRequest) error {
	return r.db.Create(request).Error
}

func (r *shiftChangeRepository) GetByID(id string) (*model.ShiftChangeRequest, error) {
	var request model.ShiftChangeRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByIDAndTarget matches only when the given staff member is the target of
// the request. A request that exists but targets someone else looks exactly
// like a missing one, which is what the respond endpoint reports.
func (r *shiftChangeRepository) GetByIDAndTarget(id string, username string) (*model.ShiftChangeRequest, error) {
	var request model.ShiftChangeRequest
	err := r.db.Where("id = ? AND target_username = ?", id, username).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *shiftChangeRepository) GetAll() ([]model.ShiftChangeRequest, error) {
	var list []model.ShiftChangeRequest
	err := r.db.Order("submitted_on asc").Find(&list).Error
	return list, err
}

func (r *shiftChangeRepository) Update(request *model.ShiftChangeRequest) error {
	return r.db.Save(request).Error
}
