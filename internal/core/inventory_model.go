package core

import "time"

// Inventory materializes "how much of product P sits in warehouse W".
// Unique per (product, warehouse); quantity never goes below zero.
type Inventory struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	WarehouseID int       `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryMovement is one row of the append-only inventory_history audit
// trail. In-order deltas for an inventory row sum to its current quantity.
type InventoryMovement struct {
	ID            int       `json:"id"`
	InventoryID   int       `json:"inventory_id"`
	QuantityDelta int       `json:"quantity_delta"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockLevel is a read view of an inventory row joined with product and
// warehouse info.
type StockLevel struct {
	InventoryID   int       `json:"inventory_id"`
	ProductID     int       `json:"product_id"`
	SKU           string    `json:"sku"`
	ProductName   string    `json:"product_name"`
	WarehouseID   int       `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      int       `json:"quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}
