package domain

import "github.com/shopspring/decimal"

// MonthlySales is one bucket in the sales-over-time chart.
type MonthlySales struct {
	Month string          `json:"name"` // e.g. "Jan 2026"
	Sales decimal.Decimal `json:"sales"`
}

// DashboardSummary aggregates the headline numbers shown on the dashboard.
type DashboardSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalCustomers int64           `json:"totalCustomers"`
	TotalProducts  int64           `json:"totalProducts"`
	SalesOverTime  []MonthlySales  `json:"salesOverTime"`
}
