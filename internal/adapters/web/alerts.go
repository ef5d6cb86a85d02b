package web

import "net/http"

// lowStockAlerts handles GET /api/companies/{companyID}/alerts/low-stock.
// An unknown company returns 200 with an empty alert list.
func (h *Handler) lowStockAlerts(w http.ResponseWriter, r *http.Request) {
	companyID, ok := urlInt(w, r, "companyID")
	if !ok {
		return
	}
	result, err := h.svc.LowStockAlerts(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// listWarehouses handles GET /api/companies/{companyID}/warehouses.
func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	companyID, ok := urlInt(w, r, "companyID")
	if !ok {
		return
	}
	warehouses, err := h.svc.ListWarehouses(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, warehouses)
}
