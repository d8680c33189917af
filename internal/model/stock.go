package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockSummary is a per-product, per-warehouse rollup of quantities.
// Maintained by the receiving/issuing flows; this service only reads it.
type StockSummary struct {
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey" json:"warehouse_id"`

	QuantityOnHand    decimal.Decimal `gorm:"type:decimal(20,6);default:0" json:"quantity_on_hand"`
	QuantityReserved  decimal.Decimal `gorm:"type:decimal(20,6);default:0" json:"quantity_reserved"`
	QuantityAvailable decimal.Decimal `gorm:"type:decimal(20,6);default:0" json:"quantity_available"`

	// Earliest lot expiry among the summarized stock, if any
	EarliestExpiry *time.Time `gorm:"type:date" json:"earliest_expiry,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the rollup table name explicit
func (StockSummary) TableName() string {
	return "stock_summary"
}
