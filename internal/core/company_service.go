package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyService resolves companies and their warehouses.
type CompanyService interface {
	Exists(ctx context.Context, companyID int) (bool, error)
	Warehouses(ctx context.Context, companyID int) ([]Warehouse, error)
}

type companyService struct {
	pool *pgxpool.Pool
}

func NewCompanyService(pool *pgxpool.Pool) CompanyService {
	return &companyService{pool: pool}
}

func (s *companyService) Exists(ctx context.Context, companyID int) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)", companyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("resolve company %d: %w", companyID, err)
	}
	return exists, nil
}

func (s *companyService) Warehouses(ctx context.Context, companyID int) ([]Warehouse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, company_id, name, location, created_at
		FROM warehouses
		WHERE company_id = $1
		ORDER BY id`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
