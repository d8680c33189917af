package repository

import (
	"go-wms-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	// FindAllByCode returns every warehouse ordered by code. The dashboard
	// treats this ordering as the default-scope contract.
	FindAllByCode() ([]model.Warehouse, error)
	List(params ListParams) ([]model.Warehouse, int64, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	Create(warehouse *model.Warehouse) error
	Update(warehouse *model.Warehouse) error
	SetActive(id uuid.UUID, active bool, updatedBy string) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) FindAllByCode() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Order("code ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepo) List(params ListParams) ([]model.Warehouse, int64, error) {
	var warehouses []model.Warehouse
	total, err := list(r.db, &model.Warehouse{}, params, nil, &warehouses)
	return warehouses, total, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) SetActive(id uuid.UUID, active bool, updatedBy string) error {
	return r.db.Model(&model.Warehouse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_by": updatedBy,
		}).Error
}
