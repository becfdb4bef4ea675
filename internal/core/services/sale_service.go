package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/dto"
	"github.com/shopforge/shop_manager_app/internal/utils/accounting"
)

type saleService struct {
	saleRepo     portsrepo.SaleRepositoryFacade
	customerRepo portsrepo.CustomerReader
	productRepo  portsrepo.ProductReader
	ledgerSvc    portssvc.LedgerSvcFacade
}

// NewSaleService creates a new sale service.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	productRepo portsrepo.ProductReader,
	ledgerSvc portssvc.LedgerSvcFacade,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		ledgerSvc:    ledgerSvc,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.Customer)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s for sale: %w", req.Customer, err)
	}

	productIDs := make([]string, len(req.Products))
	for i, item := range req.Products {
		productIDs[i] = item.Product
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for sale: %w", err)
	}

	items := make([]domain.SaleItem, len(req.Products))
	total := decimal.Zero
	for i, line := range req.Products {
		product, ok := products[line.Product]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.Product)
		}
		// A zero price means "use the product's current selling price";
		// anything else is an explicit per-sale override.
		price := line.PriceAtSale
		if price.IsZero() {
			price = product.SellingPrice
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: negative price for product %s", apperrors.ErrValidation, line.Product)
		}
		items[i] = domain.SaleItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: price,
		}
		total = total.Add(price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	if req.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: amountPaid cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = req.SaleDate.UTC()
	}

	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		CustomerID:   req.Customer,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  total,
		AmountPaid:   req.AmountPaid,
		SaleDate:     saleDate,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}
	return &sale, nil
}

func (s *saleService) GetSaleDetails(ctx context.Context, saleID string) (*domain.SaleDetails, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s for sale %s: %w", sale.CustomerID, saleID, err)
	}

	entries, err := s.ledgerSvc.CustomerLedgerEntries(ctx, sale.CustomerID)
	if err != nil {
		return nil, err
	}
	previous, newTotal, err := accounting.PreviousBalance(entries, sale.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve balances for sale %s: %w", saleID, err)
	}

	return &domain.SaleDetails{
		Sale:            *sale,
		Customer:        *customer,
		PreviousBalance: previous,
		NewTotalBalance: newTotal,
	}, nil
}

func (s *saleService) ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSales(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
