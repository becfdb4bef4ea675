package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
)

// EntryType distinguishes the two kinds of events on a customer ledger.
type EntryType string

const (
	EntrySale    EntryType = "sale"
	EntryPayment EntryType = "payment"
)

// LedgerEntry is one economic event affecting a customer's account.
//
// Debit is the amount billed to the customer by this event, Credit the amount
// paid or credited. A sale may carry both at once (invoice total plus the
// amount paid at sale time); a payment carries a zero debit. OriginalID points
// back at the Sale or Payment record that produced the entry so consumers can
// navigate to details.
type LedgerEntry struct {
	EntryID     string          `json:"id"`
	Type        EntryType       `json:"type"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	OriginalID  string          `json:"originalId"`
}

// NewLedgerEntry constructs a LedgerEntry, enforcing its invariants:
// debit and credit must be non-negative and the type must be recognized.
func NewLedgerEntry(id string, entryType EntryType, date time.Time, description string, debit, credit decimal.Decimal, originalID string) (LedgerEntry, error) {
	if entryType != EntrySale && entryType != EntryPayment {
		return LedgerEntry{}, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, entryType)
	}
	if debit.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("%w: debit must not be negative (got %s)", apperrors.ErrValidation, debit)
	}
	if credit.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("%w: credit must not be negative (got %s)", apperrors.ErrValidation, credit)
	}
	return LedgerEntry{
		EntryID:     id,
		Type:        entryType,
		Date:        date,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		OriginalID:  originalID,
	}, nil
}

// LedgerEntryWithBalance is a LedgerEntry annotated with the account balance
// immediately after the entry's own effect is applied.
type LedgerEntryWithBalance struct {
	LedgerEntry
	RunningBalanceAfter decimal.Decimal `json:"runningBalanceAfter"`
}

// CustomerLedger is the derived, read-only view over one customer's entries.
//
// Balance is totalCredit minus totalDebit: negative means the customer owes
// money (due), positive means they have prepaid (advance). OrderedByDate is
// ascending chronological order; DisplayOrder is the same sequence reversed
// for most-recent-first rendering, with identical balance annotations.
type CustomerLedger struct {
	Customer      Customer                 `json:"customer"`
	TotalDebit    decimal.Decimal          `json:"totalDebit"`
	TotalCredit   decimal.Decimal          `json:"totalCredit"`
	Balance       decimal.Decimal          `json:"balance"`
	OrderedByDate []LedgerEntryWithBalance `json:"orderedByDate"`
	DisplayOrder  []LedgerEntryWithBalance `json:"displayOrder"`
}
