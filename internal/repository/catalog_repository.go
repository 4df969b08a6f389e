package repository

import (
	"shiftportal/internal/model"

	"gorm.io/gorm"
)

// Branch and role catalogs are read almost exclusively to resolve ids into
// display names at clock-in time, so that is the shape of the interface.
type BranchRepository interface {
	GetByID(id string) (*model.Branch, error)
	Create(branch *model.Branch) error
}

type RoleRepository interface {
	GetByID(id string) (*model.Role, error)
	Create(role *model.Role) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db}
}

func (r *branchRepository) GetByID(id string) (*model.Branch, error) {
	var branch model.Branch
	err := r.db.Where("id = ?", id).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) Create(branch *model.Branch) error {
	return r.db.Create(branch).Error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) GetByID(id string) (*model.Role, error) {
	var role model.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(role *model.Role) error {
	return r.db.Create(role).Error
}
