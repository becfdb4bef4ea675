package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

func sampleSaleDetails() *domain.SaleDetails {
	return &domain.SaleDetails{
		Sale: domain.Sale{
			SaleID:     "sale-abcdef123456",
			CustomerID: "cust-1",
			Items: []domain.SaleItem{
				{ProductID: "prod-1", ProductName: "Rice 5kg", Quantity: 2, PriceAtSale: decimal.NewFromInt(450)},
				{ProductID: "prod-2", ProductName: "Oil 1L", Quantity: 3, PriceAtSale: decimal.NewFromInt(170)},
			},
			TotalAmount: decimal.NewFromInt(1410),
			AmountPaid:  decimal.NewFromInt(1000),
			SaleDate:    time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		Customer:        domain.Customer{CustomerID: "cust-1", Name: "Karim Store", Phone: "01711111111"},
		PreviousBalance: decimal.NewFromInt(-600),
		NewTotalBalance: decimal.NewFromInt(-1010),
	}
}

func TestRenderInvoice(t *testing.T) {
	renderer := NewHTMLRenderer()

	html, err := renderer.RenderInvoice("ShopForge", sampleSaleDetails())
	require.NoError(t, err)

	assert.Contains(t, html, "Invoice #123456")
	assert.Contains(t, html, "ShopForge")
	assert.Contains(t, html, "Karim Store")
	assert.Contains(t, html, "Rice 5kg")
	// 2 * 450 line total
	assert.Contains(t, html, "৳900")
	assert.Contains(t, html, "৳1,410")
	// Negative balances print as absolute amounts labeled Due.
	assert.Contains(t, html, "Previous Balance (Due)")
	assert.Contains(t, html, "৳600")
	assert.Contains(t, html, "Current Balance (Due)")
	assert.Contains(t, html, "৳1,010")
	assert.NotContains(t, html, "-৳")
}

func TestRenderInvoice_DefaultShopName(t *testing.T) {
	renderer := NewHTMLRenderer()

	html, err := renderer.RenderInvoice("", sampleSaleDetails())
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Invoice</strong>")
}

func TestRenderInvoice_Deterministic(t *testing.T) {
	renderer := NewHTMLRenderer()
	details := sampleSaleDetails()

	first, err := renderer.RenderInvoice("ShopForge", details)
	require.NoError(t, err)
	second, err := renderer.RenderInvoice("ShopForge", details)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderInvoice_EscapesCustomerInput(t *testing.T) {
	renderer := NewHTMLRenderer()
	details := sampleSaleDetails()
	details.Customer.Name = `<script>alert("x")</script>`

	html, err := renderer.RenderInvoice("ShopForge", details)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestRenderLedgerStatement(t *testing.T) {
	renderer := NewHTMLRenderer().(*HTMLRenderer)
	renderer.now = func() time.Time {
		return time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	}

	sale := domain.LedgerEntryWithBalance{
		LedgerEntry: domain.LedgerEntry{
			EntryID:     "sale-1",
			Type:        domain.EntrySale,
			Date:        time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			Description: "Invoice #123456",
			Debit:       decimal.NewFromInt(1000),
			Credit:      decimal.NewFromInt(400),
			OriginalID:  "sale-1",
		},
		RunningBalanceAfter: decimal.NewFromInt(-600),
	}
	payment := domain.LedgerEntryWithBalance{
		LedgerEntry: domain.LedgerEntry{
			EntryID:     "pay-1",
			Type:        domain.EntryPayment,
			Date:        time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
			Description: "Payment received",
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(600),
			OriginalID:  "pay-1",
		},
		RunningBalanceAfter: decimal.Zero,
	}

	ledger := &domain.CustomerLedger{
		Customer:      domain.Customer{CustomerID: "cust-1", Name: "Karim Store"},
		TotalDebit:    decimal.NewFromInt(1000),
		TotalCredit:   decimal.NewFromInt(1000),
		Balance:       decimal.Zero,
		OrderedByDate: []domain.LedgerEntryWithBalance{sale, payment},
		DisplayOrder:  []domain.LedgerEntryWithBalance{payment, sale},
	}

	html, err := renderer.RenderLedgerStatement("ShopForge", ledger)
	require.NoError(t, err)

	assert.Contains(t, html, "Customer Ledger")
	assert.Contains(t, html, "Printed: 01 Feb 2026")
	assert.Contains(t, html, "Invoice #123456")
	assert.Contains(t, html, "Payment received")
	// Zero balance reads as Advance per the sign convention.
	assert.Contains(t, html, "Balance (Advance)")

	// Statement rows are chronological, payment after the sale.
	saleIdx := strings.Index(html, "Invoice #123456")
	payIdx := strings.Index(html, "Payment received")
	assert.Less(t, saleIdx, payIdx)
}
