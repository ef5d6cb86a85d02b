package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductService manages the product catalog and bundle composition.
type ProductService interface {
	// Create inserts a new product and, when input.InitialStock is set, its
	// genesis inventory row — atomically. A duplicate SKU yields ConflictError;
	// an unknown warehouse yields ConstraintError. Nothing is observable from
	// a failed attempt.
	Create(ctx context.Context, input NewProduct) (*Product, error)
	GetByID(ctx context.Context, productID int) (*Product, error)
	List(ctx context.Context) ([]Product, error)

	// AddBundleComponent links a child product into a bundle with a quantity
	// multiplier.
	AddBundleComponent(ctx context.Context, bundleID, componentID, quantity int) error
	GetBundleComponents(ctx context.Context, bundleID int) ([]BundleComponent, error)
}

type productService struct {
	pool *pgxpool.Pool
}

func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

const productColumns = "id, sku, name, price, product_type, low_stock_threshold, avg_daily_sales, created_at"

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.ProductType,
		&p.LowStockThreshold, &p.AvgDailySales, &p.CreatedAt)
}

func (s *productService) Create(ctx context.Context, input NewProduct) (*Product, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// No SKU pre-check: the unique index decides. Two concurrent creates for
	// the same SKU both reach this insert and exactly one commits.
	p := &Product{}
	err = scanProduct(tx.QueryRow(ctx, `
		INSERT INTO products (sku, name, price, product_type, low_stock_threshold, avg_daily_sales)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		input.SKU, input.Name, input.Price, input.ProductType,
		input.LowStockThreshold, input.AvgDailySales,
	), p)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w",
			storeError(err, fmt.Sprintf("product with SKU %q already exists", input.SKU)))
	}

	if input.InitialStock != nil {
		var inventoryID int
		err = tx.QueryRow(ctx, `
			INSERT INTO inventory (product_id, warehouse_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id`,
			p.ID, input.InitialStock.WarehouseID, input.InitialStock.Quantity,
		).Scan(&inventoryID)
		if err != nil {
			return nil, fmt.Errorf("insert initial inventory: %w",
				storeError(err, "inventory already exists for this product and warehouse"))
		}

		// Genesis stock is logged as a delta from zero so every inventory
		// row's history sums to its current quantity.
		_, err = tx.Exec(ctx, `
			INSERT INTO inventory_history (inventory_id, quantity_delta, reason)
			VALUES ($1, $2, 'initial stock')`,
			inventoryID, input.InitialStock.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("insert genesis stock history: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit product creation: %w",
			storeError(err, fmt.Sprintf("product with SKU %q already exists", input.SKU)))
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, productID int) (*Product, error) {
	p := &Product{}
	err := scanProduct(s.pool.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", productID), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Detail: fmt.Sprintf("product %d not found", productID)}
		}
		return nil, fmt.Errorf("fetch product %d: %w", productID, err)
	}
	return p, nil
}

func (s *productService) List(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY sku")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *productService) AddBundleComponent(ctx context.Context, bundleID, componentID, quantity int) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO product_bundles (bundle_product_id, component_product_id, quantity)
		VALUES ($1, $2, $3)`,
		bundleID, componentID, quantity,
	)
	if err != nil {
		return fmt.Errorf("add bundle component: %w",
			storeError(err, "component is already part of this bundle"))
	}
	return nil
}

func (s *productService) GetBundleComponents(ctx context.Context, bundleID int) ([]BundleComponent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT pb.bundle_product_id, pb.component_product_id, p.sku, p.name, pb.quantity
		FROM product_bundles pb
		JOIN products p ON p.id = pb.component_product_id
		WHERE pb.bundle_product_id = $1
		ORDER BY pb.component_product_id`,
		bundleID,
	)
	if err != nil {
		return nil, fmt.Errorf("query bundle components: %w", err)
	}
	defer rows.Close()

	var components []BundleComponent
	for rows.Next() {
		var c BundleComponent
		if err := rows.Scan(&c.BundleProductID, &c.ComponentProductID,
			&c.ComponentSKU, &c.ComponentName, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		components = append(components, c)
	}
	return components, rows.Err()
}
