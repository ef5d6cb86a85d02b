package core_test

import (
	"testing"

	"inventory-service/internal/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateAndFetch(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	created, err := svc.Create(ctx, core.NewProduct{
		SKU:               "WIDGET-1",
		Name:              "Widget",
		Price:             decimal.RequireFromString("19.99"),
		ProductType:       "hardware",
		LowStockThreshold: 10,
		AvgDailySales:     decimal.RequireFromString("2.5"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "WIDGET-1", fetched.SKU)
	// Stored price must equal the input exactly — no rounding drift.
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("19.99")),
		"expected 19.99, got %s", fetched.Price)
	assert.True(t, fetched.AvgDailySales.Equal(decimal.RequireFromString("2.5")))
}

func TestProductService_DuplicateSKU(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	input := core.NewProduct{
		SKU:   "WIDGET-1",
		Name:  "Widget",
		Price: decimal.RequireFromString("5.00"),
	}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	input.Name = "Widget Clone"
	_, err = svc.Create(ctx, input)
	var conflict *core.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "WIDGET-1")

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE sku = 'WIDGET-1'").Scan(&count))
	assert.Equal(t, 1, count, "exactly one product per SKU")
}

func TestProductService_GenesisStock(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	created, err := svc.Create(ctx, core.NewProduct{
		SKU:          "WIDGET-2",
		Name:         "Widget",
		Price:        decimal.RequireFromString("7.50"),
		InitialStock: &core.StockPlacement{WarehouseID: 1, Quantity: 40},
	})
	require.NoError(t, err)

	var inventoryID, quantity int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT id, quantity FROM inventory WHERE product_id = $1 AND warehouse_id = 1",
		created.ID).Scan(&inventoryID, &quantity))
	assert.Equal(t, 40, quantity)

	// Genesis stock leaves an audit row: delta from zero.
	var delta int
	var reason string
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT quantity_delta, reason FROM inventory_history WHERE inventory_id = $1",
		inventoryID).Scan(&delta, &reason))
	assert.Equal(t, 40, delta)
	assert.Equal(t, "initial stock", reason)
}

func TestProductService_CreateWithoutStock(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	created, err := svc.Create(ctx, core.NewProduct{
		SKU:   "WIDGET-3",
		Name:  "Widget",
		Price: decimal.RequireFromString("3.25"),
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM inventory WHERE product_id = $1", created.ID).Scan(&count))
	assert.Zero(t, count, "a product may exist with zero inventory rows")
}

func TestProductService_RollbackOnUnknownWarehouse(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	_, err := svc.Create(ctx, core.NewProduct{
		SKU:          "WIDGET-4",
		Name:         "Widget",
		Price:        decimal.RequireFromString("4.00"),
		InitialStock: &core.StockPlacement{WarehouseID: 999, Quantity: 5},
	})
	var constraint *core.ConstraintError
	require.ErrorAs(t, err, &constraint)

	// The failed attempt must leave nothing behind: no product, no inventory.
	var count int
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM products WHERE sku = 'WIDGET-4'").Scan(&count))
	assert.Zero(t, count, "product insert must roll back with the inventory insert")
}

func TestProductService_Bundles(t *testing.T) {
	pool, ctx := setupTestDB(t)
	svc := core.NewProductService(pool)

	bundle, err := svc.Create(ctx, core.NewProduct{
		SKU: "KIT-1", Name: "Starter Kit", Price: decimal.RequireFromString("99.00"),
	})
	require.NoError(t, err)
	part, err := svc.Create(ctx, core.NewProduct{
		SKU: "PART-1", Name: "Part", Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddBundleComponent(ctx, bundle.ID, part.ID, 3))

	// Linking the same component twice is a conflict.
	err = svc.AddBundleComponent(ctx, bundle.ID, part.ID, 1)
	var conflict *core.ConflictError
	require.ErrorAs(t, err, &conflict)

	components, err := svc.GetBundleComponents(ctx, bundle.ID)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "PART-1", components[0].ComponentSKU)
	assert.Equal(t, 3, components[0].Quantity)
}
