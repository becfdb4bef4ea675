package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// MonthlySalesResponse is one bucket of the sales-over-time chart.
type MonthlySalesResponse struct {
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
}

// DashboardSummaryResponse is the analytics summary shown on the dashboard.
type DashboardSummaryResponse struct {
	TotalRevenue   decimal.Decimal        `json:"totalRevenue"`
	TotalProfit    decimal.Decimal        `json:"totalProfit"`
	TotalCustomers int64                  `json:"totalCustomers"`
	TotalProducts  int64                  `json:"totalProducts"`
	SalesOverTime  []MonthlySalesResponse `json:"salesOverTime"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	resp := DashboardSummaryResponse{
		TotalRevenue:   s.TotalRevenue,
		TotalProfit:    s.TotalProfit,
		TotalCustomers: s.TotalCustomers,
		TotalProducts:  s.TotalProducts,
		SalesOverTime:  make([]MonthlySalesResponse, len(s.SalesOverTime)),
	}
	for i, m := range s.SalesOverTime {
		resp.SalesOverTime[i] = MonthlySalesResponse{Name: m.Month, Sales: m.Sales}
	}
	return resp
}
