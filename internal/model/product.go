package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Code          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU           string          `gorm:"type:varchar(50);index" json:"sku"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	MinStockLevel decimal.Decimal `gorm:"type:decimal(20,6);default:0" json:"min_stock_level"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
}
