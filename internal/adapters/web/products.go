package web

import (
	"encoding/json"
	"net/http"

	"inventory-service/internal/app"
)

// createProduct handles POST /api/products.
// Body: { name, sku, price, product_type?, low_stock_threshold?,
// avg_daily_sales?, warehouse_id?, initial_quantity? }.
// warehouse_id and initial_quantity must come together or not at all.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name              string          `json:"name"`
		SKU               string          `json:"sku"`
		Price             json.RawMessage `json:"price"`
		ProductType       string          `json:"product_type"`
		LowStockThreshold *int            `json:"low_stock_threshold"`
		AvgDailySales     json.RawMessage `json:"avg_daily_sales"`
		WarehouseID       *int            `json:"warehouse_id"`
		InitialQuantity   *int            `json:"initial_quantity"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := h.svc.CreateProduct(r.Context(), app.CreateProductRequest{
		Name:              body.Name,
		SKU:               body.SKU,
		Price:             numberLiteral(body.Price),
		ProductType:       body.ProductType,
		LowStockThreshold: body.LowStockThreshold,
		AvgDailySales:     numberLiteral(body.AvgDailySales),
		WarehouseID:       body.WarehouseID,
		InitialQuantity:   body.InitialQuantity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// getProduct handles GET /api/products/{productID}.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := urlInt(w, r, "productID")
	if !ok {
		return
	}
	product, err := h.svc.GetProduct(r.Context(), productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, product)
}

// listProducts handles GET /api/products.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, products)
}

// addBundleComponent handles POST /api/products/{productID}/bundle.
// Body: { component_product_id, quantity }.
func (h *Handler) addBundleComponent(w http.ResponseWriter, r *http.Request) {
	bundleID, ok := urlInt(w, r, "productID")
	if !ok {
		return
	}

	var body struct {
		ComponentProductID int `json:"component_product_id"`
		Quantity           int `json:"quantity"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	err := h.svc.AddBundleComponent(r.Context(), app.AddBundleComponentRequest{
		BundleProductID:    bundleID,
		ComponentProductID: body.ComponentProductID,
		Quantity:           body.Quantity,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeCreated(w, map[string]string{"message": "bundle component added"})
}

// listBundleComponents handles GET /api/products/{productID}/bundle.
func (h *Handler) listBundleComponents(w http.ResponseWriter, r *http.Request) {
	bundleID, ok := urlInt(w, r, "productID")
	if !ok {
		return
	}
	components, err := h.svc.BundleComponents(r.Context(), bundleID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, components)
}
