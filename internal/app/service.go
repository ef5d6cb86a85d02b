package app

import (
	"context"

	"inventory-service/internal/core"
)

// ApplicationService is the single interface the web adapter calls. It owns
// request validation; implementations reject bad input before any store
// interaction and contain no presentation logic.
type ApplicationService interface {
	// CreateProduct validates and persists a new product, optionally seeding
	// one warehouse's stock row, atomically.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error)
	GetProduct(ctx context.Context, productID int) (*core.Product, error)
	ListProducts(ctx context.Context) ([]core.Product, error)

	// LowStockAlerts returns reorder alerts for a company, most urgent first.
	// An unknown company yields an empty result, not an error.
	LowStockAlerts(ctx context.Context, companyID int) (*LowStockResult, error)

	ListWarehouses(ctx context.Context, companyID int) ([]core.Warehouse, error)
	StockLevels(ctx context.Context, companyID int) ([]core.StockLevel, error)
	AdjustStock(ctx context.Context, req AdjustStockRequest) (*core.Inventory, error)
	StockHistory(ctx context.Context, inventoryID int) ([]core.InventoryMovement, error)

	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*core.Supplier, error)
	ListSuppliers(ctx context.Context) ([]core.Supplier, error)
	LinkSupplier(ctx context.Context, req LinkSupplierRequest) error
	ProductSuppliers(ctx context.Context, productID int) ([]core.ProductSupplierLink, error)

	AddBundleComponent(ctx context.Context, req AddBundleComponentRequest) error
	BundleComponents(ctx context.Context, bundleProductID int) ([]core.BundleComponent, error)
}
