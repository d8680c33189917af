package repository

import (
	"go-wms-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchRepository interface {
	List(params ListParams) ([]model.Branch, int64, error)
	FindByID(id uuid.UUID) (*model.Branch, error)
	FindByCode(code string) (*model.Branch, error)
	Create(branch *model.Branch) error
	Update(branch *model.Branch) error
	SetActive(id uuid.UUID, active bool, updatedBy string) error
}

type branchRepo struct {
	db *gorm.DB
}

func NewBranchRepo(db *gorm.DB) BranchRepository {
	return &branchRepo{db}
}

func (r *branchRepo) List(params ListParams) ([]model.Branch, int64, error) {
	var branches []model.Branch
	total, err := list(r.db, &model.Branch{}, params,
		[]string{"Organization", "CreatedByUser", "UpdatedByUser"}, &branches)
	return branches, total, err
}

func (r *branchRepo) FindByID(id uuid.UUID) (*model.Branch, error) {
	var branch model.Branch
	err := r.db.Preload("Organization").Preload("CreatedByUser").Preload("UpdatedByUser").
		First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) FindByCode(code string) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.First(&branch, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepo) Create(branch *model.Branch) error {
	return r.db.Create(branch).Error
}

func (r *branchRepo) Update(branch *model.Branch) error {
	return r.db.Save(branch).Error
}

func (r *branchRepo) SetActive(id uuid.UUID, active bool, updatedBy string) error {
	return r.db.Model(&model.Branch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":          active,
			"updated_by":         updatedBy,
			"updated_by_user_id": updatedBy,
		}).Error
}
