package app

import (
	"strings"

	"inventory-service/internal/core"

	"github.com/shopspring/decimal"
)

func requiredErr(field string) *core.ValidationError {
	return &core.ValidationError{Field: field, Detail: field + " is required"}
}

func invalidErr(field, reason string) *core.ValidationError {
	return &core.ValidationError{Field: field, Detail: field + " " + reason}
}

// validateCreateProduct checks a creation request before any store
// interaction and converts it into the core input type. The first violation
// found wins; callers get exactly one named field per failed request.
func validateCreateProduct(req CreateProductRequest) (core.NewProduct, error) {
	if strings.TrimSpace(req.Name) == "" {
		return core.NewProduct{}, requiredErr("name")
	}
	if strings.TrimSpace(req.SKU) == "" {
		return core.NewProduct{}, requiredErr("sku")
	}
	if strings.TrimSpace(req.Price) == "" {
		return core.NewProduct{}, requiredErr("price")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return core.NewProduct{}, invalidErr("price", "must be a valid decimal number")
	}
	if price.IsNegative() {
		return core.NewProduct{}, invalidErr("price", "cannot be negative")
	}

	avgDailySales := decimal.Zero
	if strings.TrimSpace(req.AvgDailySales) != "" {
		avgDailySales, err = decimal.NewFromString(req.AvgDailySales)
		if err != nil {
			return core.NewProduct{}, invalidErr("avg_daily_sales", "must be a valid decimal number")
		}
		if avgDailySales.IsNegative() {
			return core.NewProduct{}, invalidErr("avg_daily_sales", "cannot be negative")
		}
	}

	threshold := 0
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return core.NewProduct{}, invalidErr("low_stock_threshold", "cannot be negative")
		}
		threshold = *req.LowStockThreshold
	}

	if (req.WarehouseID == nil) != (req.InitialQuantity == nil) {
		return core.NewProduct{}, invalidErr("initial_quantity",
			"and warehouse_id must be supplied together")
	}

	var placement *core.StockPlacement
	if req.WarehouseID != nil {
		if *req.InitialQuantity < 0 {
			return core.NewProduct{}, invalidErr("initial_quantity", "cannot be negative")
		}
		placement = &core.StockPlacement{
			WarehouseID: *req.WarehouseID,
			Quantity:    *req.InitialQuantity,
		}
	}

	return core.NewProduct{
		SKU:               strings.TrimSpace(req.SKU),
		Name:              strings.TrimSpace(req.Name),
		Price:             price,
		ProductType:       strings.TrimSpace(req.ProductType),
		LowStockThreshold: threshold,
		AvgDailySales:     avgDailySales,
		InitialStock:      placement,
	}, nil
}

func validateAdjustStock(req AdjustStockRequest) error {
	if req.Delta == 0 {
		return invalidErr("delta", "must be non-zero")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return requiredErr("reason")
	}
	return nil
}

func validateCreateSupplier(req CreateSupplierRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return requiredErr("name")
	}
	if strings.TrimSpace(req.ContactEmail) == "" {
		return requiredErr("contact_email")
	}
	if !strings.Contains(req.ContactEmail, "@") {
		return invalidErr("contact_email", "must be a valid email address")
	}
	return nil
}

func validateAddBundleComponent(req AddBundleComponentRequest) error {
	if req.Quantity <= 0 {
		return invalidErr("quantity", "must be positive")
	}
	if req.BundleProductID == req.ComponentProductID {
		return invalidErr("component_product_id", "cannot equal the bundle product")
	}
	return nil
}
