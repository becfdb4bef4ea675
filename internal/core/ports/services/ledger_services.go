package services

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// LedgerSvcFacade builds derived ledger views for customers. Snapshots are
// computed fresh on every call; nothing is cached between requests.
type LedgerSvcFacade interface {
	// GetCustomerLedger fetches the customer's sales and payments, shapes
	// them into ledger entries, and aggregates them into a CustomerLedger.
	GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error)

	// CustomerLedgerEntries returns the customer's raw ledger entries in the
	// deterministic (date, creation) order the engine expects.
	CustomerLedgerEntries(ctx context.Context, customerID string) ([]domain.LedgerEntry, error)
}

// ReportingSvcFacade produces the dashboard analytics summary.
type ReportingSvcFacade interface {
	// GetDashboardSummary returns revenue, profit, entity counts, and the
	// monthly sales series for the last twelve months.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
