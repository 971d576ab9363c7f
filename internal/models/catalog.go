package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockLevel string

const (
	StockOut StockLevel = "out_of_stock"
	StockLow StockLevel = "low_stock"
	StockIn  StockLevel = "in_stock"
)

// LowStockThreshold is the stock count below which a product is flagged.
const LowStockThreshold = 5

func StockLevelOf(stock int) StockLevel {
	switch {
	case stock <= 0:
		return StockOut
	case stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedBy *string         `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (p Product) StockLevel() StockLevel { return StockLevelOf(p.Stock) }

type Service struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedBy *string         `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
