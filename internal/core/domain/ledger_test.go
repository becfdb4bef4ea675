package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

func TestNewLedgerEntry(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		entryType domain.EntryType
		debit     decimal.Decimal
		credit    decimal.Decimal
		wantErr   bool
	}{
		{
			name:      "sale with debit and credit",
			entryType: domain.EntrySale,
			debit:     decimal.NewFromInt(1000),
			credit:    decimal.NewFromInt(400),
		},
		{
			name:      "pure payment",
			entryType: domain.EntryPayment,
			debit:     decimal.Zero,
			credit:    decimal.NewFromInt(600),
		},
		{
			name:      "negative debit rejected",
			entryType: domain.EntrySale,
			debit:     decimal.NewFromInt(-1),
			credit:    decimal.Zero,
			wantErr:   true,
		},
		{
			name:      "negative credit rejected",
			entryType: domain.EntryPayment,
			debit:     decimal.Zero,
			credit:    decimal.NewFromInt(-5),
			wantErr:   true,
		},
		{
			name:      "unknown type rejected",
			entryType: domain.EntryType("refund"),
			debit:     decimal.NewFromInt(10),
			credit:    decimal.Zero,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := domain.NewLedgerEntry("id-1", tt.entryType, date, "desc", tt.debit, tt.credit, "orig-1")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.entryType, e.Type)
			assert.True(t, tt.debit.Equal(e.Debit))
			assert.True(t, tt.credit.Equal(e.Credit))
		})
	}
}
