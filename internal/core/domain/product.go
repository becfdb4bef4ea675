package domain

import "github.com/shopspring/decimal"

// Product represents an item in the shop inventory.
// Quantity is the number of units currently in stock.
type Product struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	AuditFields
}
