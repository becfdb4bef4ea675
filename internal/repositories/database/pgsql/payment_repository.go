package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
        INSERT INTO payments (payment_id, customer_id, amount, date, notes, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		payment.PaymentID,
		payment.CustomerID,
		payment.Amount,
		payment.Date,
		payment.Notes,
		payment.CreatedAt,
		payment.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentsByCustomerID(ctx context.Context, customerID string) ([]domain.Payment, error) {
	query := `
        SELECT payment_id, customer_id, amount, date, notes, created_at, last_updated_at
        FROM payments
        WHERE customer_id = $1
        ORDER BY date ASC, created_at ASC, payment_id ASC;
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var p domain.Payment
		err := row.Scan(
			&p.PaymentID,
			&p.CustomerID,
			&p.Amount,
			&p.Date,
			&p.Notes,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments for customer %s: %w", customerID, err)
	}
	return payments, nil
}
