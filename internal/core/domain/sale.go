package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is a single product line within a sale.
// PriceAtSale captures the unit price at the moment of sale, so later price
// edits on the product never change historical invoices.
type SaleItem struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
}

// Sale represents one invoice: a set of items sold to a customer, the invoice
// total, and the amount the customer paid at the time of sale. Any unpaid
// remainder becomes due on the customer's ledger.
type Sale struct {
	SaleID       string          `json:"saleID"`
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName,omitempty"`
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	SaleDate     time.Time       `json:"saleDate"`
	AuditFields
}

// SaleDetails is a sale joined with its customer and the ledger balances the
// invoice view needs: the customer's balance before this sale was applied and
// the balance after it (previousBalance + amountPaid - totalAmount).
type SaleDetails struct {
	Sale
	Customer        Customer        `json:"customer"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewTotalBalance decimal.Decimal `json:"newTotalBalance"`
}

// InvoiceNumber is the short human-facing invoice reference, the last six
// characters of the sale ID.
func (s Sale) InvoiceNumber() string {
	if len(s.SaleID) <= 6 {
		return s.SaleID
	}
	return s.SaleID[len(s.SaleID)-6:]
}
