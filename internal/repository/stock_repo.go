package repository

import (
	"time"

	"go-wms-admin/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardKPIs are the aggregate figures shown as dashboard cards.
type DashboardKPIs struct {
	TotalSKUs      int64           `json:"total_skus"`
	TotalOnHand    decimal.Decimal `json:"total_on_hand"`
	TotalReserved  decimal.Decimal `json:"total_reserved"`
	TotalAvailable decimal.Decimal `json:"total_available"`
	LowStockItems  int64           `json:"low_stock_items"`
	ExpiringSoon   int64           `json:"expiring_soon"`
}

const expiringSoonWindow = 30 * 24 * time.Hour

type StockRepository interface {
	// FindAvailability returns the availability rows, optionally scoped to one warehouse.
	FindAvailability(warehouseID *uuid.UUID) ([]model.StockSummary, error)
	// GetKPIs computes the aggregate dashboard figures, optionally scoped to one warehouse.
	GetKPIs(warehouseID *uuid.UUID) (*DashboardKPIs, error)
	Upsert(summary *model.StockSummary) error
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) FindAvailability(warehouseID *uuid.UUID) ([]model.StockSummary, error) {
	var rows []model.StockSummary
	q := r.db.Model(&model.StockSummary{})
	if warehouseID != nil {
		q = q.Where("warehouse_id = ?", *warehouseID)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *stockRepo) GetKPIs(warehouseID *uuid.UUID) (*DashboardKPIs, error) {
	var kpis DashboardKPIs

	scoped := func() *gorm.DB {
		q := r.db.Model(&model.StockSummary{})
		if warehouseID != nil {
			q = q.Where("warehouse_id = ?", *warehouseID)
		}
		return q
	}

	if err := scoped().Distinct("product_id").Count(&kpis.TotalSKUs).Error; err != nil {
		return nil, err
	}

	type sums struct {
		OnHand    decimal.Decimal
		Reserved  decimal.Decimal
		Available decimal.Decimal
	}
	var s sums
	err := scoped().
		Select(`
			COALESCE(SUM(quantity_on_hand), 0) as on_hand,
			COALESCE(SUM(quantity_reserved), 0) as reserved,
			COALESCE(SUM(quantity_available), 0) as available
		`).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	kpis.TotalOnHand = s.OnHand
	kpis.TotalReserved = s.Reserved
	kpis.TotalAvailable = s.Available

	// A product is low-stock when the sum of its available quantities in
	// scope is strictly below its configured minimum. Products with no
	// stock rows count as zero available.
	lowStockQuery := `
		SELECT COUNT(*) FROM products p
		WHERE p.min_stock_level > 0
		  AND p.deleted_at IS NULL
		  AND COALESCE((
			SELECT SUM(s.quantity_available) FROM stock_summary s
			WHERE s.product_id = p.id`
	args := []interface{}{}
	if warehouseID != nil {
		lowStockQuery += ` AND s.warehouse_id = ?`
		args = append(args, *warehouseID)
	}
	lowStockQuery += `
		  ), 0) < p.min_stock_level`
	if err := r.db.Raw(lowStockQuery, args...).Scan(&kpis.LowStockItems).Error; err != nil {
		return nil, err
	}

	err = scoped().
		Where("earliest_expiry IS NOT NULL AND earliest_expiry <= ?", time.Now().Add(expiringSoonWindow)).
		Count(&kpis.ExpiringSoon).Error
	if err != nil {
		return nil, err
	}

	return &kpis, nil
}

func (r *stockRepo) Upsert(summary *model.StockSummary) error {
	return r.db.Save(summary).Error
}
