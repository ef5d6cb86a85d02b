package core

import "time"

// Company owns warehouses. Products are global and reach a company only
// through inventory rows in its warehouses.
type Company struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Warehouse is a physical storage location belonging to a company.
type Warehouse struct {
	ID        int       `json:"id"`
	CompanyID int       `json:"company_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Supplier is a reorder contact. Suppliers are global, not company-scoped.
type Supplier struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductSupplierLink is one row of the product–supplier many-to-many link.
// At most one link per product carries IsPrimary; the partial unique index
// product_suppliers_one_primary enforces it.
type ProductSupplierLink struct {
	ProductID    int    `json:"product_id"`
	SupplierID   int    `json:"supplier_id"`
	IsPrimary    bool   `json:"is_primary"`
	SupplierName string `json:"supplier_name"`
	ContactEmail string `json:"contact_email"`
}

// BundleComponent is a child product of a composite (bundle) product together
// with its quantity multiplier.
type BundleComponent struct {
	BundleProductID    int    `json:"bundle_product_id"`
	ComponentProductID int    `json:"component_product_id"`
	ComponentSKU       string `json:"component_sku"`
	ComponentName      string `json:"component_name"`
	Quantity           int    `json:"quantity"`
}
