package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// CreatePaymentRequest defines the data for recording a customer payment.
// Date arrives as "2006-01-02" from the dashboard's date picker; empty means
// today.
type CreatePaymentRequest struct {
	Customer string          `json:"customer" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes"`
}

// PaymentResponse is the public view of a payment.
type PaymentResponse struct {
	PaymentID  string          `json:"_id"`
	CustomerID string          `json:"customer"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Date:       p.Date,
		Notes:      p.Notes,
	}
}
