package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents money received from a customer outside of a sale,
// typically settling an outstanding due.
type Payment struct {
	PaymentID  string          `json:"paymentID"`
	CustomerID string          `json:"customerID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	AuditFields
}
