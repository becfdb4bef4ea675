package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/utils/accounting"
)

func entry(id string, entryType domain.EntryType, day int, debit, credit int64) domain.LedgerEntry {
	e, err := domain.NewLedgerEntry(
		id,
		entryType,
		time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
		"test entry "+id,
		decimal.NewFromInt(debit),
		decimal.NewFromInt(credit),
		id,
	)
	if err != nil {
		panic(err)
	}
	return e
}

func TestAggregate_Totals(t *testing.T) {
	customer := domain.Customer{CustomerID: "c1", Name: "Rahim Traders"}
	entries := []domain.LedgerEntry{
		entry("s1", domain.EntrySale, 1, 1000, 400),
		entry("p1", domain.EntryPayment, 2, 0, 600),
		entry("s2", domain.EntrySale, 3, 2500, 0),
	}

	ledger := accounting.Aggregate(entries, customer)

	assert.True(t, decimal.NewFromInt(3500).Equal(ledger.TotalDebit), "totalDebit: %s", ledger.TotalDebit)
	assert.True(t, decimal.NewFromInt(1000).Equal(ledger.TotalCredit), "totalCredit: %s", ledger.TotalCredit)
	assert.True(t, decimal.NewFromInt(-2500).Equal(ledger.Balance), "balance: %s", ledger.Balance)
	assert.Equal(t, customer, ledger.Customer)
}

func TestAggregate_TotalsAreOrderIndependent(t *testing.T) {
	a := entry("s1", domain.EntrySale, 1, 1000, 400)
	b := entry("p1", domain.EntryPayment, 2, 0, 600)
	c := entry("s2", domain.EntrySale, 3, 2500, 100)

	permutations := [][]domain.LedgerEntry{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}

	customer := domain.Customer{CustomerID: "c1"}
	base := accounting.Aggregate(permutations[0], customer)
	for _, perm := range permutations[1:] {
		got := accounting.Aggregate(perm, customer)
		assert.True(t, base.TotalDebit.Equal(got.TotalDebit))
		assert.True(t, base.TotalCredit.Equal(got.TotalCredit))
		assert.True(t, base.Balance.Equal(got.Balance))
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	ledger := accounting.Aggregate(nil, domain.Customer{CustomerID: "c1"})

	assert.True(t, ledger.TotalDebit.IsZero())
	assert.True(t, ledger.TotalCredit.IsZero())
	assert.True(t, ledger.Balance.IsZero())
	assert.Empty(t, ledger.OrderedByDate)
	assert.Empty(t, ledger.DisplayOrder)
}

func TestWithRunningBalances_SortsAndFolds(t *testing.T) {
	// Supplied newest-first on purpose; the calculator must sort ascending.
	entries := []domain.LedgerEntry{
		entry("p1", domain.EntryPayment, 2, 0, 600),
		entry("s1", domain.EntrySale, 1, 1000, 400),
	}

	ordered := accounting.WithRunningBalances(entries)
	require.Len(t, ordered, 2)

	assert.Equal(t, "s1", ordered[0].EntryID)
	assert.True(t, decimal.NewFromInt(-600).Equal(ordered[0].RunningBalanceAfter), "got %s", ordered[0].RunningBalanceAfter)
	assert.Equal(t, "p1", ordered[1].EntryID)
	assert.True(t, ordered[1].RunningBalanceAfter.IsZero(), "got %s", ordered[1].RunningBalanceAfter)
}

func TestWithRunningBalances_FinalBalanceMatchesAggregate(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("s1", domain.EntrySale, 5, 1200, 200),
		entry("p1", domain.EntryPayment, 1, 0, 300),
		entry("s2", domain.EntrySale, 3, 700, 700),
		entry("p2", domain.EntryPayment, 9, 0, 450),
	}

	ordered := accounting.WithRunningBalances(entries)
	ledger := accounting.Aggregate(entries, domain.Customer{})

	require.NotEmpty(t, ordered)
	last := ordered[len(ordered)-1].RunningBalanceAfter
	assert.True(t, last.Equal(ledger.Balance), "running %s vs aggregate %s", last, ledger.Balance)
}

func TestAggregate_DisplayOrderIsReversalOnly(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("s1", domain.EntrySale, 1, 1000, 0),
		entry("p1", domain.EntryPayment, 2, 0, 250),
		entry("s2", domain.EntrySale, 3, 500, 500),
	}

	ledger := accounting.Aggregate(entries, domain.Customer{})
	require.Len(t, ledger.DisplayOrder, len(ledger.OrderedByDate))

	n := len(ledger.OrderedByDate)
	for i := range ledger.OrderedByDate {
		asc := ledger.OrderedByDate[i]
		desc := ledger.DisplayOrder[n-1-i]
		assert.Equal(t, asc.EntryID, desc.EntryID)
		assert.True(t, asc.RunningBalanceAfter.Equal(desc.RunningBalanceAfter),
			"annotation must not be recomputed for the reversed view")
	}
}

func TestWithRunningBalances_SameDateKeepsInputOrder(t *testing.T) {
	first := entry("s1", domain.EntrySale, 1, 1000, 0)
	second := entry("p1", domain.EntryPayment, 1, 0, 1000)

	// Repeated runs over the same input must give the same sequence.
	for run := 0; run < 10; run++ {
		ordered := accounting.WithRunningBalances([]domain.LedgerEntry{first, second})
		require.Len(t, ordered, 2)
		assert.Equal(t, "s1", ordered[0].EntryID)
		assert.True(t, decimal.NewFromInt(-1000).Equal(ordered[0].RunningBalanceAfter))
		assert.Equal(t, "p1", ordered[1].EntryID)
		assert.True(t, ordered[1].RunningBalanceAfter.IsZero())
	}
}

func TestPreviousBalance(t *testing.T) {
	sale := entry("s1", domain.EntrySale, 1, 1000, 400)
	payment := entry("p1", domain.EntryPayment, 2, 0, 600)
	entries := []domain.LedgerEntry{sale, payment}

	t.Run("earliest entry has zero previous balance", func(t *testing.T) {
		previous, newTotal, err := accounting.PreviousBalance(entries, "s1")
		require.NoError(t, err)
		assert.True(t, previous.IsZero(), "got %s", previous)
		assert.True(t, decimal.NewFromInt(-600).Equal(newTotal), "got %s", newTotal)
	})

	t.Run("later entry sees the balance before it", func(t *testing.T) {
		previous, newTotal, err := accounting.PreviousBalance(entries, "p1")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-600).Equal(previous), "got %s", previous)
		assert.True(t, newTotal.IsZero(), "got %s", newTotal)
	})

	t.Run("new total equals previous plus own effect", func(t *testing.T) {
		for _, target := range entries {
			previous, newTotal, err := accounting.PreviousBalance(entries, target.OriginalID)
			require.NoError(t, err)
			expected := previous.Add(target.Credit).Sub(target.Debit)
			assert.True(t, expected.Equal(newTotal), "entry %s: %s vs %s", target.EntryID, expected, newTotal)
		}
	})

	t.Run("unknown transaction fails with not found", func(t *testing.T) {
		_, _, err := accounting.PreviousBalance(entries, "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("empty set fails with not found", func(t *testing.T) {
		_, _, err := accounting.PreviousBalance(nil, "s1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPreviousBalance_SameDateUsesTieBrokenOrder(t *testing.T) {
	// Three entries on the same day, supplied in insertion order.
	s1 := entry("s1", domain.EntrySale, 1, 500, 0)
	p1 := entry("p1", domain.EntryPayment, 1, 0, 200)
	s2 := entry("s2", domain.EntrySale, 1, 300, 0)
	entries := []domain.LedgerEntry{s1, p1, s2}

	previous, newTotal, err := accounting.PreviousBalance(entries, "p1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-500).Equal(previous), "got %s", previous)
	assert.True(t, decimal.NewFromInt(-300).Equal(newTotal), "got %s", newTotal)

	previous, _, err = accounting.PreviousBalance(entries, "s2")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-300).Equal(previous), "got %s", previous)
}

func TestAggregate_NoFloatDriftOnFractionalAmounts(t *testing.T) {
	// 0.1 + 0.2 style sums must not flip the sign of a near-zero balance.
	debit, err := decimal.NewFromString("0.30")
	require.NoError(t, err)
	c1, err := decimal.NewFromString("0.10")
	require.NoError(t, err)
	c2, err := decimal.NewFromString("0.20")
	require.NoError(t, err)

	d, err := domain.NewLedgerEntry("s1", domain.EntrySale, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "sale", debit, decimal.Zero, "s1")
	require.NoError(t, err)
	pa, err := domain.NewLedgerEntry("p1", domain.EntryPayment, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "payment", decimal.Zero, c1, "p1")
	require.NoError(t, err)
	pb, err := domain.NewLedgerEntry("p2", domain.EntryPayment, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), "payment", decimal.Zero, c2, "p2")
	require.NoError(t, err)

	ledger := accounting.Aggregate([]domain.LedgerEntry{d, pa, pb}, domain.Customer{})
	assert.True(t, ledger.Balance.IsZero(), "balance should be exactly zero, got %s", ledger.Balance)
}
