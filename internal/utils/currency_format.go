package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// takaSign is the Bangladeshi Taka currency glyph used across the dashboard.
const takaSign = "৳"

// FormatTaka renders an amount with the taka glyph and thousands separators,
// e.g. 12500 -> "৳12,500" and 12500.5 -> "৳12,500.50". Whole amounts drop the
// fractional part, matching how the dashboard renders money.
func FormatTaka(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	negative := rounded.IsNegative()
	abs := rounded.Abs()

	str := abs.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(str, ".")

	formatted := takaSign + groupThousands(intPart)
	if fracPart != "00" {
		formatted += "." + fracPart
	}
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// BalanceLabel maps the ledger sign convention to its display label:
// negative balances are money the customer owes ("Due"), non-negative
// balances are prepayments ("Advance").
func BalanceLabel(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "Due"
	}
	return "Advance"
}

// FormatBalance renders a signed balance as its absolute amount, leaving the
// Due/Advance label swap to BalanceLabel.
func FormatBalance(balance decimal.Decimal) string {
	return FormatTaka(balance.Abs())
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
