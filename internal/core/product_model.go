package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item identified by a globally unique SKU. It is not
// tied to any warehouse; stock lives in inventory rows.
type Product struct {
	ID                int             `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	ProductType       string          `json:"product_type"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewProduct is the validated input for ProductService.Create. Price and
// AvgDailySales arrive as exact decimals; callers must never route them
// through binary floating point.
type NewProduct struct {
	SKU               string
	Name              string
	Price             decimal.Decimal
	ProductType       string
	LowStockThreshold int
	AvgDailySales     decimal.Decimal
	// InitialStock, when non-nil, seeds one inventory row in the same
	// transaction as the product insert.
	InitialStock *StockPlacement
}

// StockPlacement seeds an initial quantity of a new product into a warehouse.
type StockPlacement struct {
	WarehouseID int
	Quantity    int
}
