package core_test

import (
	"context"
	"os"
	"testing"

	"inventory-service/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// setupTestDB migrates a dedicated test database, wipes it, and seeds one
// company with two warehouses. Set TEST_DATABASE_URL to run the integration
// tests; they are skipped otherwise to protect live databases.
func setupTestDB(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()

	if err := db.MigrateUp(dbURL); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	pool, err := db.NewPoolFromURL(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE product_bundles, product_suppliers, suppliers,
		               inventory_history, inventory, products, warehouses, companies
		RESTART IDENTITY CASCADE;

		INSERT INTO companies (id, name) VALUES (1, 'Acme Distribution');

		INSERT INTO warehouses (id, company_id, name, location) VALUES
		(1, 1, 'Main Warehouse',  'Bengaluru'),
		(2, 1, 'North Warehouse', 'Delhi');

		SELECT setval('companies_id_seq', 10);
		SELECT setval('warehouses_id_seq', 10);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test data: %v", err)
	}

	return pool, ctx
}
