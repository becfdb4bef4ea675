package services

import (
	"context"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
	"github.com/shopforge/shop_manager_app/internal/dto"
)

// ProductSvcFacade defines the product management operations.
type ProductSvcFacade interface {
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)

	// UpdateProduct applies the non-nil fields of req to an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error
}
