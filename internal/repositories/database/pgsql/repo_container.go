package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
