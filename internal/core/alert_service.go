package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LowStockAlert is one (product, warehouse) combination at or below its
// reorder threshold, enriched with the primary supplier's contact data.
type LowStockAlert struct {
	ProductID         int             `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	WarehouseID       int             `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	CurrentStock      int             `json:"current_stock"`
	Threshold         int             `json:"threshold"`
	DaysUntilStockout int64           `json:"days_until_stockout"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"`
	// Supplier is nil when the product has no primary supplier on record.
	Supplier *AlertSupplier `json:"supplier"`
}

// AlertSupplier is the reorder contact attached to an alert.
type AlertSupplier struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// AlertService evaluates low-stock alerts across a company's warehouses.
type AlertService interface {
	// LowStock returns every (product, warehouse) row whose quantity is at or
	// below the product's threshold, excluding products with zero sales
	// velocity. Ordered by days until stockout ascending, then product ID.
	// An unknown company yields an empty list, not an error.
	LowStock(ctx context.Context, companyID int) ([]LowStockAlert, error)
}

type alertService struct {
	pool *pgxpool.Pool
}

func NewAlertService(pool *pgxpool.Pool) AlertService {
	return &alertService{pool: pool}
}

func (s *alertService) LowStock(ctx context.Context, companyID int) ([]LowStockAlert, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)", companyID,
	).Scan(&exists); err != nil {
		return nil, fmt.Errorf("resolve company %d: %w", companyID, err)
	}
	if !exists {
		// An unknown company reads the same as a company with no alerts.
		return nil, nil
	}

	// One row per inventory row. The join is restricted to the primary
	// supplier link, so multi-supplier products cannot fan out into duplicate
	// alerts; products without a primary supplier still alert, with the
	// supplier columns null.
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.name, p.sku,
		       w.id, w.name,
		       i.quantity, p.low_stock_threshold, p.avg_daily_sales,
		       s.id, s.name, s.contact_email
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN products p   ON p.id = i.product_id
		LEFT JOIN product_suppliers ps ON ps.product_id = p.id AND ps.is_primary
		LEFT JOIN suppliers s          ON s.id = ps.supplier_id
		WHERE w.company_id = $1
		  AND p.avg_daily_sales > 0
		  AND i.quantity <= p.low_stock_threshold`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query low-stock inventory: %w", err)
	}
	defer rows.Close()

	var alerts []LowStockAlert
	for rows.Next() {
		var a LowStockAlert
		var supID *int
		var supName, supEmail *string
		if err := rows.Scan(
			&a.ProductID, &a.ProductName, &a.SKU,
			&a.WarehouseID, &a.WarehouseName,
			&a.CurrentStock, &a.Threshold, &a.AvgDailySales,
			&supID, &supName, &supEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low-stock row: %w", err)
		}
		a.DaysUntilStockout = DaysUntilStockout(a.CurrentStock, a.AvgDailySales)
		if supID != nil {
			a.Supplier = &AlertSupplier{ID: *supID, Name: *supName, ContactEmail: *supEmail}
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate low-stock rows: %w", err)
	}

	// Most urgent first; ties broken by product ID for deterministic output.
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].DaysUntilStockout != alerts[j].DaysUntilStockout {
			return alerts[i].DaysUntilStockout < alerts[j].DaysUntilStockout
		}
		return alerts[i].ProductID < alerts[j].ProductID
	})
	return alerts, nil
}

// DaysUntilStockout returns floor(quantity / avgDailySales). avgDailySales
// must be positive; the alert query filters zero-velocity products out before
// this runs.
func DaysUntilStockout(quantity int, avgDailySales decimal.Decimal) int64 {
	return decimal.NewFromInt(int64(quantity)).Div(avgDailySales).Floor().IntPart()
}
