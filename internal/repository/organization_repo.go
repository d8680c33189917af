package repository

import (
	"go-wms-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationOption is the minimal shape for filter dropdowns.
type OrganizationOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OrganizationRepository interface {
	List(params ListParams) ([]model.Organization, int64, error)
	FindByID(id uuid.UUID) (*model.Organization, error)
	FindByCode(code string) (*model.Organization, error)
	Create(org *model.Organization) error
	Update(org *model.Organization) error
	SetActive(id uuid.UUID, active bool, updatedBy string) error
	Options() ([]OrganizationOption, error)
}

type organizationRepo struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) OrganizationRepository {
	return &organizationRepo{db}
}

func (r *organizationRepo) List(params ListParams) ([]model.Organization, int64, error) {
	var orgs []model.Organization
	total, err := list(r.db, &model.Organization{}, params,
		[]string{"CreatedByUser", "UpdatedByUser"}, &orgs)
	return orgs, total, err
}

func (r *organizationRepo) FindByID(id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	err := r.db.Preload("CreatedByUser").Preload("UpdatedByUser").First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepo) FindByCode(code string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.First(&org, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepo) Create(org *model.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepo) Update(org *model.Organization) error {
	return r.db.Save(org).Error
}

func (r *organizationRepo) SetActive(id uuid.UUID, active bool, updatedBy string) error {
	return r.db.Model(&model.Organization{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":          active,
			"updated_by":         updatedBy,
			"updated_by_user_id": updatedBy,
		}).Error
}

// Options lists organizations ordered by name for the branches page filter.
func (r *organizationRepo) Options() ([]OrganizationOption, error) {
	var options []OrganizationOption
	err := r.db.Model(&model.Organization{}).
		Select("id, name").
		Order("name ASC").
		Scan(&options).Error
	return options, err
}
