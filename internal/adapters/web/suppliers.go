package web

import (
	"net/http"

	"inventory-service/internal/app"
)

// createSupplier handles POST /api/suppliers.
// Body: { name, contact_email }.
func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contact_email"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	supplier, err := h.svc.CreateSupplier(r.Context(), app.CreateSupplierRequest{
		Name:         body.Name,
		ContactEmail: body.ContactEmail,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, supplier)
}

// listSuppliers handles GET /api/suppliers.
func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, suppliers)
}

// linkSupplier handles POST /api/products/{productID}/suppliers.
// Body: { supplier_id, is_primary }. A product can carry at most one primary
// supplier link.
func (h *Handler) linkSupplier(w http.ResponseWriter, r *http.Request) {
	productID, ok := urlInt(w, r, "productID")
	if !ok {
		return
	}

	var body struct {
		SupplierID int  `json:"supplier_id"`
		IsPrimary  bool `json:"is_primary"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	err := h.svc.LinkSupplier(r.Context(), app.LinkSupplierRequest{
		ProductID:  productID,
		SupplierID: body.SupplierID,
		IsPrimary:  body.IsPrimary,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, map[string]string{"message": "supplier linked"})
}

// listProductSuppliers handles GET /api/products/{productID}/suppliers.
func (h *Handler) listProductSuppliers(w http.ResponseWriter, r *http.Request) {
	productID, ok := urlInt(w, r, "productID")
	if !ok {
		return
	}
	links, err := h.svc.ProductSuppliers(r.Context(), productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, links)
}
