package app

import (
	"testing"

	"inventory-service/internal/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestValidateCreateProduct_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProductRequest
		field   string
		message string
	}{
		{
			name:    "missing name",
			req:     CreateProductRequest{SKU: "W-1", Price: "9.99"},
			field:   "name",
			message: "name is required",
		},
		{
			name:    "missing sku",
			req:     CreateProductRequest{Name: "Widget", Price: "9.99"},
			field:   "sku",
			message: "sku is required",
		},
		{
			name:    "missing price",
			req:     CreateProductRequest{Name: "Widget", SKU: "W-1"},
			field:   "price",
			message: "price is required",
		},
		{
			name:    "whitespace-only name",
			req:     CreateProductRequest{Name: "   ", SKU: "W-1", Price: "9.99"},
			field:   "name",
			message: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateCreateProduct(tt.req)
			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Error())
		})
	}
}

func TestValidateCreateProduct_Price(t *testing.T) {
	t.Run("malformed price", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "nineteen",
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "price", vErr.Field)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "-0.01",
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "price", vErr.Field)
	})

	t.Run("price parses exactly", func(t *testing.T) {
		input, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "19.99",
		})
		require.NoError(t, err)
		// Exact decimal equality, not float comparison.
		assert.True(t, input.Price.Equal(decimal.RequireFromString("19.99")),
			"expected 19.99, got %s", input.Price)
	})

	t.Run("high-precision price survives", func(t *testing.T) {
		input, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "0.1",
		})
		require.NoError(t, err)
		assert.Equal(t, "0.1", input.Price.String())
	})
}

func TestValidateCreateProduct_InitialStockPair(t *testing.T) {
	t.Run("warehouse without quantity is rejected", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			WarehouseID: intPtr(1),
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("quantity without warehouse is rejected", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			InitialQuantity: intPtr(5),
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("negative initial quantity is rejected", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			WarehouseID: intPtr(1), InitialQuantity: intPtr(-1),
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "initial_quantity", vErr.Field)
	})

	t.Run("both supplied", func(t *testing.T) {
		input, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			WarehouseID: intPtr(3), InitialQuantity: intPtr(25),
		})
		require.NoError(t, err)
		require.NotNil(t, input.InitialStock)
		assert.Equal(t, 3, input.InitialStock.WarehouseID)
		assert.Equal(t, 25, input.InitialStock.Quantity)
	})

	t.Run("neither supplied", func(t *testing.T) {
		input, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
		})
		require.NoError(t, err)
		assert.Nil(t, input.InitialStock)
	})
}

func TestValidateCreateProduct_OptionalFields(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		input, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, input.LowStockThreshold)
		assert.True(t, input.AvgDailySales.IsZero())
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			LowStockThreshold: intPtr(-1),
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "low_stock_threshold", vErr.Field)
	})

	t.Run("malformed avg_daily_sales rejected", func(t *testing.T) {
		_, err := validateCreateProduct(CreateProductRequest{
			Name: "Widget", SKU: "W-1", Price: "9.99",
			AvgDailySales: "fast",
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "avg_daily_sales", vErr.Field)
	})
}

func TestValidateAdjustStock(t *testing.T) {
	assert.Error(t, validateAdjustStock(AdjustStockRequest{InventoryID: 1, Delta: 0, Reason: "recount"}))
	assert.Error(t, validateAdjustStock(AdjustStockRequest{InventoryID: 1, Delta: 5, Reason: "  "}))
	assert.NoError(t, validateAdjustStock(AdjustStockRequest{InventoryID: 1, Delta: -5, Reason: "damaged goods"}))
}

func TestValidateCreateSupplier(t *testing.T) {
	assert.Error(t, validateCreateSupplier(CreateSupplierRequest{ContactEmail: "a@b.com"}))
	assert.Error(t, validateCreateSupplier(CreateSupplierRequest{Name: "Acme"}))
	assert.Error(t, validateCreateSupplier(CreateSupplierRequest{Name: "Acme", ContactEmail: "not-an-email"}))
	assert.NoError(t, validateCreateSupplier(CreateSupplierRequest{Name: "Acme", ContactEmail: "sales@acme.com"}))
}

func TestValidateAddBundleComponent(t *testing.T) {
	assert.Error(t, validateAddBundleComponent(AddBundleComponentRequest{BundleProductID: 1, ComponentProductID: 2, Quantity: 0}))
	assert.Error(t, validateAddBundleComponent(AddBundleComponentRequest{BundleProductID: 1, ComponentProductID: 1, Quantity: 2}))
	assert.NoError(t, validateAddBundleComponent(AddBundleComponentRequest{BundleProductID: 1, ComponentProductID: 2, Quantity: 3}))
}
