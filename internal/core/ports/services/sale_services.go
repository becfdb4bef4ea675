package services

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/dto"
)

// SaleSvcFacade defines the sale recording and invoice operations.
type SaleSvcFacade interface {
	// RecordSale validates the request, totals the items, and persists the
	// sale together with its stock decrements.
	RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// GetSaleDetails retrieves a sale with its customer, resolved product
	// names, and the ledger balances before and after the sale (the invoice
	// preview contract).
	GetSaleDetails(ctx context.Context, saleID string) (*domain.SaleDetails, error)

	// ListSales retrieves a paginated list of sales, newest first.
	ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error)
}

// PaymentSvcFacade defines the payment recording operations.
type PaymentSvcFacade interface {
	// RecordPayment validates and persists a customer payment.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
}
