package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/utils/accounting"
)

// ledgerService assembles customer ledgers. It owns no state: each call
// fetches the latest persisted sales and payments and runs the reconciliation
// engine on them from scratch.
type ledgerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	saleRepo     portsrepo.SaleReader
	paymentRepo  portsrepo.PaymentReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	saleRepo portsrepo.SaleReader,
	paymentRepo portsrepo.PaymentReader,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		paymentRepo:  paymentRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s for ledger: %w", customerID, err)
	}

	entries, err := s.CustomerLedgerEntries(ctx, customerID)
	if err != nil {
		return nil, err
	}

	ledger := accounting.Aggregate(entries, *customer)
	return &ledger, nil
}

// CustomerLedgerEntries shapes the customer's sales and payments into ledger
// entries, ordered by (date, creation time) ascending so that same-date
// entries reach the engine in insertion order and its stable tie-break is
// deterministic across fetches.
func (s *ledgerService) CustomerLedgerEntries(ctx context.Context, customerID string) ([]domain.LedgerEntry, error) {
	sales, err := s.saleRepo.FindSalesByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for customer %s: %w", customerID, err)
	}
	payments, err := s.paymentRepo.FindPaymentsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for customer %s: %w", customerID, err)
	}

	type datedEntry struct {
		entry     domain.LedgerEntry
		createdAt time.Time
	}
	dated := make([]datedEntry, 0, len(sales)+len(payments))

	for _, sale := range sales {
		entry, err := domain.NewLedgerEntry(
			sale.SaleID,
			domain.EntrySale,
			sale.SaleDate,
			"Invoice #"+sale.InvoiceNumber(),
			sale.TotalAmount,
			sale.AmountPaid,
			sale.SaleID,
		)
		if err != nil {
			return nil, fmt.Errorf("sale %s produced an invalid ledger entry: %w", sale.SaleID, err)
		}
		dated = append(dated, datedEntry{entry: entry, createdAt: sale.CreatedAt})
	}

	for _, payment := range payments {
		description := "Payment received"
		if payment.Notes != "" {
			description = "Payment received (" + payment.Notes + ")"
		}
		entry, err := domain.NewLedgerEntry(
			payment.PaymentID,
			domain.EntryPayment,
			payment.Date,
			description,
			decimal.Zero,
			payment.Amount,
			payment.PaymentID,
		)
		if err != nil {
			return nil, fmt.Errorf("payment %s produced an invalid ledger entry: %w", payment.PaymentID, err)
		}
		dated = append(dated, datedEntry{entry: entry, createdAt: payment.CreatedAt})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		if !dated[i].entry.Date.Equal(dated[j].entry.Date) {
			return dated[i].entry.Date.Before(dated[j].entry.Date)
		}
		return dated[i].createdAt.Before(dated[j].createdAt)
	})

	entries := make([]domain.LedgerEntry, len(dated))
	for i, d := range dated {
		entries[i] = d.entry
	}
	return entries, nil
}
