package render

import (
	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// Renderer produces printable HTML documents from ledger data. Output is
// deterministic for a given input so invoices can be re-printed byte for byte.
type Renderer interface {
	// RenderInvoice renders the printable invoice for one sale.
	RenderInvoice(shopName string, details *domain.SaleDetails) (string, error)

	// RenderLedgerStatement renders the printable statement of a customer's
	// full transaction history.
	RenderLedgerStatement(shopName string, ledger *domain.CustomerLedger) (string, error)
}
