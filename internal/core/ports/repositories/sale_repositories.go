package repositories

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale and its items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSalesByCustomerID retrieves every sale for one customer ordered by
	// (sale_date, created_at, sale_id) ascending, so callers feeding the
	// ledger engine get a deterministic insertion-order tie-break.
	FindSalesByCustomerID(ctx context.Context, customerID string) ([]domain.Sale, error)

	// FindSales retrieves a paginated list of sales, newest first.
	FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists the sale, its items, and the matching stock
	// decrements in a single database transaction. It fails with
	// apperrors.ErrInsufficientStock when any item exceeds available stock.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
