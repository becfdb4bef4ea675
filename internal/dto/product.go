package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// CreateProductRequest defines the data for creating a product.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	SKU          string          `json:"sku" binding:"required"`
	Quantity     int64           `json:"quantity" binding:"min=0"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// UpdateProductRequest defines the data allowed when updating a product.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Quantity     *int64           `json:"quantity"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ProductID    string          `json:"_id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int64           `json:"quantity"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
	}
}

// ToListProductsResponse converts a slice of domain.Product to the list DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	resp := ListProductsResponse{Data: make([]ProductResponse, len(products))}
	for i := range products {
		resp.Data[i] = ToProductResponse(&products[i])
	}
	return resp
}
