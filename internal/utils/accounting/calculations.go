// Package accounting implements the customer ledger reconciliation engine:
// merging sale and payment entries into a chronological account history with
// running balances, and resolving the balance that existed before any single
// transaction. Every function is a pure computation over its input; callers
// re-run the engine on each fetch rather than caching results.
package accounting

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// Aggregate merges the entries of one customer into a CustomerLedger.
// The caller is responsible for scoping entries to a single customer.
//
// Totals are commutative sums, so any permutation of the input yields the
// same totalDebit, totalCredit and balance. An empty input is a valid ledger
// with zero totals, not an error.
func Aggregate(entries []domain.LedgerEntry, customer domain.Customer) domain.CustomerLedger {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	ordered := WithRunningBalances(entries)

	// Reversal is presentation only: the annotations computed over the
	// ascending order are carried over unchanged.
	display := make([]domain.LedgerEntryWithBalance, len(ordered))
	for i, e := range ordered {
		display[len(ordered)-1-i] = e
	}

	return domain.CustomerLedger{
		Customer:      customer,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		Balance:       totalCredit.Sub(totalDebit),
		OrderedByDate: ordered,
		DisplayOrder:  display,
	}
}

// WithRunningBalances sorts entries ascending by date and annotates each with
// the balance immediately after it: bal_i = bal_{i-1} + credit_i - debit_i,
// starting from zero.
//
// Entries sharing a date keep the order they were supplied in (stable sort).
// That tie-break is deliberate: callers wanting a different one, such as an
// insertion sequence number, must pre-sort their input.
func WithRunningBalances(entries []domain.LedgerEntry) []domain.LedgerEntryWithBalance {
	sorted := make([]domain.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make([]domain.LedgerEntryWithBalance, len(sorted))
	balance := decimal.Zero
	for i, e := range sorted {
		balance = balance.Add(e.Credit).Sub(e.Debit)
		out[i] = domain.LedgerEntryWithBalance{
			LedgerEntry:         e,
			RunningBalanceAfter: balance,
		}
	}
	return out
}

// PreviousBalance resolves, for the entry whose OriginalID matches originalID,
// the account balance immediately before that entry's own effect was applied,
// along with the balance after it (previous + credit - debit). The invoice
// print view shows the pair as "Previous Balance" and "New Total Due/Advance".
//
// When several entries share the target's date, "before" means before the
// target in the same tie-broken order WithRunningBalances uses, so the invoice
// view and the ledger view always agree. An originalID absent from entries
// fails with apperrors.ErrNotFound; it is never defaulted to zero.
func PreviousBalance(entries []domain.LedgerEntry, originalID string) (previous, newTotal decimal.Decimal, err error) {
	ordered := WithRunningBalances(entries)
	for i, e := range ordered {
		if e.OriginalID != originalID {
			continue
		}
		previous = decimal.Zero
		if i > 0 {
			previous = ordered[i-1].RunningBalanceAfter
		}
		return previous, e.RunningBalanceAfter, nil
	}
	return decimal.Zero, decimal.Zero, fmt.Errorf("%w: no ledger entry for transaction %s", apperrors.ErrNotFound, originalID)
}
