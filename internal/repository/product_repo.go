package repository

import (
	"go-wms-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	List(params ListParams) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	// FindLowStockEligible returns products with a configured minimum level.
	// Products with min_stock_level = 0 never participate in low-stock checks.
	FindLowStockEligible() ([]model.Product, error)
	Create(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) List(params ListParams) ([]model.Product, int64, error) {
	var products []model.Product
	total, err := list(r.db, &model.Product{}, params, nil, &products)
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindLowStockEligible() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("min_stock_level > 0").Find(&products).Error
	return products, err
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}
