package app

// CreateProductRequest is the input for CreateProduct. Price and
// AvgDailySales carry the raw decimal text from the request body; they are
// parsed exactly during validation and never pass through binary floating
// point. WarehouseID and InitialQuantity must be supplied together or not at
// all.
type CreateProductRequest struct {
	Name              string
	SKU               string
	Price             string
	ProductType       string
	LowStockThreshold *int
	AvgDailySales     string
	WarehouseID       *int
	InitialQuantity   *int
}

// AdjustStockRequest applies a signed quantity delta to an inventory row.
type AdjustStockRequest struct {
	InventoryID int
	Delta       int
	Reason      string
}

// CreateSupplierRequest is the input for CreateSupplier.
type CreateSupplierRequest struct {
	Name         string
	ContactEmail string
}

// LinkSupplierRequest attaches a supplier to a product.
type LinkSupplierRequest struct {
	ProductID  int
	SupplierID int
	IsPrimary  bool
}

// AddBundleComponentRequest links a child product into a bundle.
type AddBundleComponentRequest struct {
	BundleProductID    int
	ComponentProductID int
	Quantity           int
}
