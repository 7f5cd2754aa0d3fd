package domain

// Product is a catalog item that can be quoted.
type Product struct {
	ProductID    string `json:"productID"`    // Primary Key (e.g., UUID)
	SKU          string `json:"sku"`          // Unique stock-keeping unit
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"` // e.g., "USD"
}
