package service

import (
	"errors"
	"fmt"
	"sync"

	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoWarehouseAccess is returned when the user has no warehouses in scope;
// the dashboard renders a no-access state and performs no further fetches.
var ErrNoWarehouseAccess = errors.New("no accessible warehouses")

// LowStockProduct is one row of the dashboard's restock report.
type LowStockProduct struct {
	SKU      string          `json:"sku"`
	Product  string          `json:"product"`
	OnHand   decimal.Decimal `json:"on_hand"`
	MinLevel decimal.Decimal `json:"min_level"`
}

// Overview is everything one dashboard load produces for a warehouse scope.
type Overview struct {
	WarehouseID     uuid.UUID                `json:"warehouse_id"`
	KPIs            repository.DashboardKPIs `json:"kpis"`
	WarehouseStatus []model.WarehouseStatus  `json:"warehouse_status"`
	LowStock        []LowStockProduct        `json:"low_stock"`
}

type DashboardService interface {
	// Warehouses returns the selectable scopes, ordered by code. The first
	// entry is the default scope; backend ordering is the contract.
	Warehouses() ([]model.Warehouse, error)
	// Overview loads the dashboard for the given scope, or the default
	// scope when nil. The four fetches run in parallel; any failure aborts
	// the load with a single error naming the failed fetch.
	Overview(warehouseID *uuid.UUID) (*Overview, error)
}

type dashboardService struct {
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	stockRepo     repository.StockRepository
}

func NewDashboardService(
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) DashboardService {
	return &dashboardService{
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		stockRepo:     stockRepo,
	}
}

func (s *dashboardService) Warehouses() ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAllByCode()
}

func (s *dashboardService) Overview(warehouseID *uuid.UUID) (*Overview, error) {
	scope := warehouseID
	if scope == nil {
		warehouses, err := s.warehouseRepo.FindAllByCode()
		if err != nil {
			return nil, fmt.Errorf("Warehouses Error: %w", err)
		}
		if len(warehouses) == 0 {
			return nil, ErrNoWarehouseAccess
		}
		scope = &warehouses[0].ID
	}

	var (
		kpis       *repository.DashboardKPIs
		warehouses []model.Warehouse
		products   []model.Product
		stock      []model.StockSummary

		kpiErr, warehouseErr, productErr, stockErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		kpis, kpiErr = s.stockRepo.GetKPIs(scope)
	}()
	go func() {
		defer wg.Done()
		warehouses, warehouseErr = s.warehouseRepo.FindAllByCode()
	}()
	go func() {
		defer wg.Done()
		products, productErr = s.productRepo.FindLowStockEligible()
	}()
	go func() {
		defer wg.Done()
		stock, stockErr = s.stockRepo.FindAvailability(scope)
	}()
	wg.Wait()

	// One failure aborts the whole load; the error names the failed fetch
	// so nothing partial is rendered.
	if kpiErr != nil {
		return nil, fmt.Errorf("KPIs Error: %w", kpiErr)
	}
	if warehouseErr != nil {
		return nil, fmt.Errorf("Warehouses Error: %w", warehouseErr)
	}
	if productErr != nil {
		return nil, fmt.Errorf("Products Error: %w", productErr)
	}
	if stockErr != nil {
		return nil, fmt.Errorf("Stock Error: %w", stockErr)
	}

	status := make([]model.WarehouseStatus, len(warehouses))
	for i := range warehouses {
		status[i] = warehouses[i].ToStatus()
	}

	return &Overview{
		WarehouseID:     *scope,
		KPIs:            *kpis,
		WarehouseStatus: status,
		LowStock:        lowStockReport(products, stock),
	}, nil
}

// lowStockReport joins products against stock availability by product id.
// A product is flagged when its summed available quantity is strictly below
// its configured minimum; products with no stock rows count as zero.
func lowStockReport(products []model.Product, stock []model.StockSummary) []LowStockProduct {
	available := make(map[uuid.UUID]decimal.Decimal, len(stock))
	for _, row := range stock {
		available[row.ProductID] = available[row.ProductID].Add(row.QuantityAvailable)
	}

	report := []LowStockProduct{}
	for _, p := range products {
		sku := p.SKU
		if sku == "" {
			sku = p.Code
		}
		onHand := available[p.ID] // zero value when no stock rows
		if onHand.LessThan(p.MinStockLevel) {
			report = append(report, LowStockProduct{
				SKU:      sku,
				Product:  p.Name,
				OnHand:   onHand,
				MinLevel: p.MinStockLevel,
			})
		}
	}
	return report
}
