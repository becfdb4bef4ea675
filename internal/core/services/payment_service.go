package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portsrepo "github.com/shopforge/shop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/dto"
)

type paymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, customerRepo: customerRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.Customer); err != nil {
		return nil, fmt.Errorf("failed to find customer %s for payment: %w", req.Customer, err)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidation, req.Date)
		}
		date = parsed.UTC()
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		CustomerID:  req.Customer,
		Amount:      req.Amount,
		Date:        date,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	return &payment, nil
}
