package app

import (
	"context"

	"inventory-service/internal/core"
)

type appService struct {
	products  core.ProductService
	alerts    core.AlertService
	inventory core.InventoryService
	suppliers core.SupplierService
	companies core.CompanyService
}

// NewAppService wires the core services behind the ApplicationService facade.
func NewAppService(
	products core.ProductService,
	alerts core.AlertService,
	inventory core.InventoryService,
	suppliers core.SupplierService,
	companies core.CompanyService,
) ApplicationService {
	return &appService{
		products:  products,
		alerts:    alerts,
		inventory: inventory,
		suppliers: suppliers,
		companies: companies,
	}
}

func (s *appService) CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error) {
	input, err := validateCreateProduct(req)
	if err != nil {
		return nil, err
	}
	product, err := s.products.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	return &CreateProductResult{
		Message:   "product created",
		ProductID: product.ID,
	}, nil
}

func (s *appService) GetProduct(ctx context.Context, productID int) (*core.Product, error) {
	return s.products.GetByID(ctx, productID)
}

func (s *appService) ListProducts(ctx context.Context) ([]core.Product, error) {
	return s.products.List(ctx)
}

func (s *appService) LowStockAlerts(ctx context.Context, companyID int) (*LowStockResult, error) {
	alerts, err := s.alerts.LowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []core.LowStockAlert{}
	}
	return &LowStockResult{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

func (s *appService) ListWarehouses(ctx context.Context, companyID int) ([]core.Warehouse, error) {
	return s.companies.Warehouses(ctx, companyID)
}

func (s *appService) StockLevels(ctx context.Context, companyID int) ([]core.StockLevel, error) {
	return s.inventory.StockLevels(ctx, companyID)
}

func (s *appService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*core.Inventory, error) {
	if err := validateAdjustStock(req); err != nil {
		return nil, err
	}
	return s.inventory.Adjust(ctx, req.InventoryID, req.Delta, req.Reason)
}

func (s *appService) StockHistory(ctx context.Context, inventoryID int) ([]core.InventoryMovement, error) {
	return s.inventory.History(ctx, inventoryID)
}

func (s *appService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*core.Supplier, error) {
	if err := validateCreateSupplier(req); err != nil {
		return nil, err
	}
	return s.suppliers.Create(ctx, req.Name, req.ContactEmail)
}

func (s *appService) ListSuppliers(ctx context.Context) ([]core.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *appService) LinkSupplier(ctx context.Context, req LinkSupplierRequest) error {
	return s.suppliers.Link(ctx, req.ProductID, req.SupplierID, req.IsPrimary)
}

func (s *appService) ProductSuppliers(ctx context.Context, productID int) ([]core.ProductSupplierLink, error) {
	return s.suppliers.LinksForProduct(ctx, productID)
}

func (s *appService) AddBundleComponent(ctx context.Context, req AddBundleComponentRequest) error {
	if err := validateAddBundleComponent(req); err != nil {
		return err
	}
	return s.products.AddBundleComponent(ctx, req.BundleProductID, req.ComponentProductID, req.Quantity)
}

func (s *appService) BundleComponents(ctx context.Context, bundleProductID int) ([]core.BundleComponent, error) {
	return s.products.GetBundleComponents(ctx, bundleProductID)
}
