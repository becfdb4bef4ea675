package repositories

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentsByCustomerID retrieves every payment for one customer
	// ordered by (date, created_at, payment_id) ascending.
	FindPaymentsByCustomerID(ctx context.Context, customerID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
