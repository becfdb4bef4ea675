package services

import (
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// The ledger service feeds the sale service: invoice details need the
	// customer's balance as it stood before the sale.
	container.Ledger = NewLedgerService(repos.CustomerRepo, repos.SaleRepo, repos.PaymentRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.CustomerRepo, repos.ProductRepo, container.Ledger)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.CustomerRepo)

	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
