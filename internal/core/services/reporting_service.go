package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
)

// monthsOfHistory is how far back the sales-over-time chart reaches.
const monthsOfHistory = 12

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	revenue, profit, err := s.reportingRepo.SumRevenueAndProfit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue and profit: %w", err)
	}

	customers, err := s.reportingRepo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	products, err := s.reportingRepo.CountProductsInStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products in stock: %w", err)
	}

	// Start the window at the first day of the month eleven months back so
	// the chart always shows twelve whole months including the current one.
	now := time.Now().UTC()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthsOfHistory - 1), 0)
	salesOverTime, err := s.reportingRepo.MonthlySalesTotals(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly sales totals: %w", err)
	}

	return &domain.DashboardSummary{
		TotalRevenue:   revenue,
		TotalProfit:    profit,
		TotalCustomers: customers,
		TotalProducts:  products,
		SalesOverTime:  salesOverTime,
	}, nil
}
