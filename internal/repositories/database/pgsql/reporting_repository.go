package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) SumRevenueAndProfit(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	// Profit is computed against the product's current cost price. Items for
	// deleted products contribute revenue but no profit.
	query := `
        SELECT
            COALESCE((SELECT SUM(total_amount) FROM sales), 0),
            COALESCE(SUM((si.price_at_sale - p.cost_price) * si.quantity), 0)
        FROM sale_items si
        JOIN products p ON p.product_id = si.product_id;
    `
	var revenue, profit decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&revenue, &profit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum revenue and profit: %w", err)
	}
	return revenue, profit, nil
}

func (r *PgxReportingRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountProductsInStock(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE quantity > 0;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products in stock: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) MonthlySalesTotals(ctx context.Context, since time.Time) ([]domain.MonthlySales, error) {
	query := `
        SELECT to_char(date_trunc('month', sale_date), 'Mon YYYY'), SUM(total_amount)
        FROM sales
        WHERE sale_date >= $1
        GROUP BY date_trunc('month', sale_date)
        ORDER BY date_trunc('month', sale_date) ASC;
    `
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly sales totals: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlySales, error) {
		var m domain.MonthlySales
		err := row.Scan(&m.Month, &m.Sales)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly sales totals: %w", err)
	}
	return totals, nil
}
