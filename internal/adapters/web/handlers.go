package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"inventory-service/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// ── Products ──────────────────────────────────────────────────────────
	r.Post("/api/products", h.createProduct)
	r.Get("/api/products", h.listProducts)
	r.Get("/api/products/{productID}", h.getProduct)
	r.Post("/api/products/{productID}/suppliers", h.linkSupplier)
	r.Get("/api/products/{productID}/suppliers", h.listProductSuppliers)
	r.Post("/api/products/{productID}/bundle", h.addBundleComponent)
	r.Get("/api/products/{productID}/bundle", h.listBundleComponents)

	// ── Suppliers ─────────────────────────────────────────────────────────
	r.Post("/api/suppliers", h.createSupplier)
	r.Get("/api/suppliers", h.listSuppliers)

	// ── Company-scoped reads ──────────────────────────────────────────────
	r.Get("/api/companies/{companyID}/alerts/low-stock", h.lowStockAlerts)
	r.Get("/api/companies/{companyID}/warehouses", h.listWarehouses)
	r.Get("/api/companies/{companyID}/stock", h.stockLevels)

	// ── Inventory ─────────────────────────────────────────────────────────
	r.Post("/api/inventory/{inventoryID}/adjust", h.adjustStock)
	r.Get("/api/inventory/{inventoryID}/history", h.stockHistory)

	h.router = r
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// urlInt extracts a numeric URL parameter. The second return value is false
// when the parameter is not a valid integer; the error response has already
// been written in that case.
func urlInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, name+" must be an integer", "VALIDATION_ERROR", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the size limit set by RequestBodyLimit; HTTP 400 for all other
// decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// numberLiteral turns a raw JSON value into decimal text. It accepts both a
// JSON number and a quoted numeric string, preserving the exact literal so
// prices never pass through float64. Absent and null values become "".
func numberLiteral(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	return strings.Trim(s, `"`)
}
