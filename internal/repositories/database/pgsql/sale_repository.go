package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// saleColumns joins in the customer name so list views can render who bought
// without a second query. The LEFT JOIN keeps sales readable even if the
// customer row ever goes away.
const saleColumns = `s.sale_id, s.customer_id, COALESCE(c.name, ''), s.total_amount, s.amount_paid, s.sale_date, s.created_at, s.last_updated_at`

const saleFrom = ` FROM sales s LEFT JOIN customers c ON c.customer_id = s.customer_id`

func scanSale(row pgx.Row) (domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(
		&s.SaleID,
		&s.CustomerID,
		&s.CustomerName,
		&s.TotalAmount,
		&s.AmountPaid,
		&s.SaleDate,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	return s, err
}

// SaveSale persists the sale header, its items, and the matching stock
// decrements in one transaction. The quantity guard in the UPDATE keeps stock
// from going negative even under concurrent sales of the same product.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	headerQuery := `
        INSERT INTO sales (sale_id, customer_id, total_amount, amount_paid, sale_date, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, headerQuery,
		sale.SaleID,
		sale.CustomerID,
		sale.TotalAmount,
		sale.AmountPaid,
		sale.SaleDate,
		sale.CreatedAt,
		sale.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale header: %w", err)
	}

	itemQuery := `
        INSERT INTO sale_items (sale_id, product_id, quantity, price_at_sale)
        VALUES ($1, $2, $3, $4);
    `
	stockQuery := `
        UPDATE products
        SET quantity = quantity - $2, last_updated_at = $3
        WHERE product_id = $1 AND quantity >= $2;
    `
	for _, item := range sale.Items {
		if _, err := tx.Exec(ctx, itemQuery, sale.SaleID, item.ProductID, item.Quantity, item.PriceAtSale); err != nil {
			return fmt.Errorf("failed to save sale item %s: %w", item.ProductID, err)
		}
		tag, err := tx.Exec(ctx, stockQuery, item.ProductID, item.Quantity, sale.LastUpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrInsufficientStock, item.ProductID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + saleFrom + ` WHERE s.sale_id = $1;`
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	sales := []domain.Sale{sale}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return &sales[0], nil
}

func (r *PgxSaleRepository) FindSalesByCustomerID(ctx context.Context, customerID string) ([]domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + saleFrom + `
        WHERE s.customer_id = $1
        ORDER BY s.sale_date ASC, s.created_at ASC, s.sale_id ASC;
    `
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales for customer %s: %w", customerID, err)
	}

	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + saleColumns + saleFrom + `
        ORDER BY s.sale_date DESC, s.created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// attachItems loads the line items for every sale in one query and joins in
// the current product name for display.
func (r *PgxSaleRepository) attachItems(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	saleIDs := make([]string, len(sales))
	index := make(map[string]int, len(sales))
	for i, s := range sales {
		saleIDs[i] = s.SaleID
		index[s.SaleID] = i
	}

	// product_id is nulled out when a product is deleted, so both it and the
	// name are coalesced.
	query := `
        SELECT si.sale_id, COALESCE(si.product_id, ''), COALESCE(p.name, ''), si.quantity, si.price_at_sale
        FROM sale_items si
        LEFT JOIN products p ON p.product_id = si.product_id
        WHERE si.sale_id = ANY($1)
        ORDER BY si.id ASC;
    `
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var saleID string
		var item domain.SaleItem
		if err := rows.Scan(&saleID, &item.ProductID, &item.ProductName, &item.Quantity, &item.PriceAtSale); err != nil {
			return fmt.Errorf("failed to scan sale item: %w", err)
		}
		i := index[saleID]
		sales[i].Items = append(sales[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read sale items: %w", err)
	}
	return nil
}
