package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// LedgerEntryResponse is one row of the customer ledger table, annotated with
// the balance immediately after the entry.
type LedgerEntryResponse struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	Date                time.Time       `json:"date"`
	Description         string          `json:"description"`
	Debit               decimal.Decimal `json:"debit"`
	Credit              decimal.Decimal `json:"credit"`
	OriginalID          string          `json:"originalId"`
	RunningBalanceAfter decimal.Decimal `json:"runningBalanceAfter"`
}

// LedgerResponse is the full ledger view for one customer. Transactions are
// in display order (most recent first); the annotations were computed over
// chronological order and are unchanged by the reversal.
type LedgerResponse struct {
	Customer     CustomerResponse      `json:"customer"`
	TotalDebit   decimal.Decimal       `json:"totalDebit"`
	TotalCredit  decimal.Decimal       `json:"totalCredit"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []LedgerEntryResponse `json:"transactions"`
}

func toLedgerEntryResponses(entries []domain.LedgerEntryWithBalance) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			ID:                  e.EntryID,
			Type:                string(e.Type),
			Date:                e.Date,
			Description:         e.Description,
			Debit:               e.Debit,
			Credit:              e.Credit,
			OriginalID:          e.OriginalID,
			RunningBalanceAfter: e.RunningBalanceAfter,
		}
	}
	return out
}

// ToLedgerResponse converts a domain.CustomerLedger to its DTO.
func ToLedgerResponse(ledger *domain.CustomerLedger) LedgerResponse {
	return LedgerResponse{
		Customer:     ToCustomerResponse(&ledger.Customer),
		TotalDebit:   ledger.TotalDebit,
		TotalCredit:  ledger.TotalCredit,
		Balance:      ledger.Balance,
		Transactions: toLedgerEntryResponses(ledger.DisplayOrder),
	}
}
