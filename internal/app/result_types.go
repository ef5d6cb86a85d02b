package app

import "inventory-service/internal/core"

// CreateProductResult is the success body for product creation.
type CreateProductResult struct {
	Message   string `json:"message"`
	ProductID int    `json:"product_id"`
}

// LowStockResult is the alert list for one company. Alerts is never nil, so
// an empty result serializes as {"alerts": [], "total_alerts": 0}.
type LowStockResult struct {
	Alerts      []core.LowStockAlert `json:"alerts"`
	TotalAlerts int                  `json:"total_alerts"`
}
