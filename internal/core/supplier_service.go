package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SupplierService manages supplier records and product–supplier links.
type SupplierService interface {
	Create(ctx context.Context, name, contactEmail string) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	// Link attaches a supplier to a product. A product can carry at most one
	// primary link; a second one fails with ConflictError.
	Link(ctx context.Context, productID, supplierID int, isPrimary bool) error
	LinksForProduct(ctx context.Context, productID int) ([]ProductSupplierLink, error)
}

type supplierService struct {
	pool *pgxpool.Pool
}

func NewSupplierService(pool *pgxpool.Pool) SupplierService {
	return &supplierService{pool: pool}
}

func (s *supplierService) Create(ctx context.Context, name, contactEmail string) (*Supplier, error) {
	sup := &Supplier{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, contact_email)
		VALUES ($1, $2)
		RETURNING id, name, contact_email, created_at`,
		name, contactEmail,
	).Scan(&sup.ID, &sup.Name, &sup.ContactEmail, &sup.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create supplier %q: %w", name, err)
	}
	return sup, nil
}

func (s *supplierService) List(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, contact_email, created_at FROM suppliers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var sup Supplier
		if err := rows.Scan(&sup.ID, &sup.Name, &sup.ContactEmail, &sup.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}
	return suppliers, rows.Err()
}

func (s *supplierService) Link(ctx context.Context, productID, supplierID int, isPrimary bool) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary)
		VALUES ($1, $2, $3)`,
		productID, supplierID, isPrimary,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Two unique constraints can fire here: the PK (already linked)
			// and the partial primary index (second primary).
			if pgErr.ConstraintName == "product_suppliers_one_primary" {
				return fmt.Errorf("link supplier: %w",
					&ConflictError{Detail: fmt.Sprintf("product %d already has a primary supplier", productID)})
			}
			return fmt.Errorf("link supplier: %w",
				&ConflictError{Detail: fmt.Sprintf("supplier %d is already linked to product %d", supplierID, productID)})
		}
		return fmt.Errorf("link supplier: %w", storeError(err, ""))
	}
	return nil
}

func (s *supplierService) LinksForProduct(ctx context.Context, productID int) ([]ProductSupplierLink, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT ps.product_id, ps.supplier_id, ps.is_primary, s.name, s.contact_email
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = $1
		ORDER BY ps.is_primary DESC, s.name`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("query product suppliers: %w", err)
	}
	defer rows.Close()

	var links []ProductSupplierLink
	for rows.Next() {
		var l ProductSupplierLink
		if err := rows.Scan(&l.ProductID, &l.SupplierID, &l.IsPrimary,
			&l.SupplierName, &l.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan product supplier link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
