package services

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/dto"
)

// CustomerSvcFacade defines the customer management operations.
type CustomerSvcFacade interface {
	// CreateCustomer creates a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)

	// UpdateCustomer applies the non-nil fields of req to an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}
