package web

import (
	"net/http"

	"inventory-service/internal/app"
)

// stockLevels handles GET /api/companies/{companyID}/stock.
func (h *Handler) stockLevels(w http.ResponseWriter, r *http.Request) {
	companyID, ok := urlInt(w, r, "companyID")
	if !ok {
		return
	}
	levels, err := h.svc.StockLevels(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, levels)
}

// adjustStock handles POST /api/inventory/{inventoryID}/adjust.
// Body: { delta, reason }.
func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := urlInt(w, r, "inventoryID")
	if !ok {
		return
	}

	var body struct {
		Delta  int    `json:"delta"`
		Reason string `json:"reason"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	inv, err := h.svc.AdjustStock(r.Context(), app.AdjustStockRequest{
		InventoryID: inventoryID,
		Delta:       body.Delta,
		Reason:      body.Reason,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, inv)
}

// stockHistory handles GET /api/inventory/{inventoryID}/history.
func (h *Handler) stockHistory(w http.ResponseWriter, r *http.Request) {
	inventoryID, ok := urlInt(w, r, "inventoryID")
	if !ok {
		return
	}
	movements, err := h.svc.StockHistory(r.Context(), inventoryID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, movements)
}
