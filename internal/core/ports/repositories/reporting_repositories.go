package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the aggregate queries behind the dashboard.
type ReportingRepositoryFacade interface {
	// SumRevenueAndProfit returns total revenue (sum of sale totals) and
	// total profit (sum of (priceAtSale - costPrice) * quantity over sale items).
	SumRevenueAndProfit(ctx context.Context) (revenue decimal.Decimal, profit decimal.Decimal, err error)

	// CountCustomers returns the number of customers.
	CountCustomers(ctx context.Context) (int64, error)

	// CountProductsInStock returns the number of products with stock remaining.
	CountProductsInStock(ctx context.Context) (int64, error)

	// MonthlySalesTotals returns per-month sale totals from `since` onward,
	// oldest month first.
	MonthlySalesTotals(ctx context.Context, since time.Time) ([]domain.MonthlySales, error)
}
