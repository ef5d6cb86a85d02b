package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryService reads stock levels and applies stock adjustments.
// Every mutation appends an inventory_history row in the same transaction,
// so the audit trail always sums to the current quantity.
type InventoryService interface {
	StockLevels(ctx context.Context, companyID int) ([]StockLevel, error)
	// Adjust applies a signed quantity delta to an inventory row under a row
	// lock. An adjustment that would drive the quantity negative fails with
	// ConstraintError and leaves no trace.
	Adjust(ctx context.Context, inventoryID, delta int, reason string) (*Inventory, error)
	History(ctx context.Context, inventoryID int) ([]InventoryMovement, error)
}

type inventoryService struct {
	pool *pgxpool.Pool
}

func NewInventoryService(pool *pgxpool.Pool) InventoryService {
	return &inventoryService{pool: pool}
}

func (s *inventoryService) StockLevels(ctx context.Context, companyID int) ([]StockLevel, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, p.id, p.sku, p.name, w.id, w.name, i.quantity, i.updated_at
		FROM inventory i
		JOIN products p   ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1
		ORDER BY p.sku, w.id`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query stock levels: %w", err)
	}
	defer rows.Close()

	var levels []StockLevel
	for rows.Next() {
		var sl StockLevel
		if err := rows.Scan(&sl.InventoryID, &sl.ProductID, &sl.SKU, &sl.ProductName,
			&sl.WarehouseID, &sl.WarehouseName, &sl.Quantity, &sl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		levels = append(levels, sl)
	}
	return levels, rows.Err()
}

func (s *inventoryService) Adjust(ctx context.Context, inventoryID, delta int, reason string) (*Inventory, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current int
	err = tx.QueryRow(ctx,
		"SELECT quantity FROM inventory WHERE id = $1 FOR UPDATE", inventoryID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Detail: fmt.Sprintf("inventory %d not found", inventoryID)}
		}
		return nil, fmt.Errorf("lock inventory %d: %w", inventoryID, err)
	}

	if current+delta < 0 {
		return nil, &ConstraintError{Detail: fmt.Sprintf(
			"adjustment of %d would drive inventory %d below zero (current quantity %d)",
			delta, inventoryID, current)}
	}

	inv := &Inventory{}
	err = tx.QueryRow(ctx, `
		UPDATE inventory
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, product_id, warehouse_id, quantity, updated_at`,
		delta, inventoryID,
	).Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update inventory %d: %w", inventoryID, storeError(err, ""))
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO inventory_history (inventory_id, quantity_delta, reason)
		VALUES ($1, $2, $3)`,
		inventoryID, delta, reason,
	)
	if err != nil {
		return nil, fmt.Errorf("append inventory history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit stock adjustment: %w", err)
	}
	return inv, nil
}

func (s *inventoryService) History(ctx context.Context, inventoryID int) ([]InventoryMovement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, inventory_id, quantity_delta, reason, created_at
		FROM inventory_history
		WHERE inventory_id = $1
		ORDER BY id`,
		inventoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("query inventory history: %w", err)
	}
	defer rows.Close()

	var movements []InventoryMovement
	for rows.Next() {
		var m InventoryMovement
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.QuantityDelta, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
