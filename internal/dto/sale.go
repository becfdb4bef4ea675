package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// SaleItemRequest is one product line of a sale being recorded.
type SaleItemRequest struct {
	Product     string          `json:"product" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
}

// CreateSaleRequest defines the data for recording a sale. The invoice total
// is recomputed server side from the items; a client-supplied total is ignored.
type CreateSaleRequest struct {
	Customer   string            `json:"customer" binding:"required"`
	Products   []SaleItemRequest `json:"products" binding:"required,min=1,dive"`
	AmountPaid decimal.Decimal   `json:"amountPaid"`
	SaleDate   *time.Time        `json:"saleDate"`
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// SaleItemResponse is one product line of a sale.
type SaleItemResponse struct {
	Product     ProductRef      `json:"product"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
}

// ProductRef is the minimal product reference embedded in sale responses.
type ProductRef struct {
	ProductID string `json:"_id"`
	Name      string `json:"name"`
}

// CustomerRef is the minimal customer reference embedded in sale responses,
// enough for list views to render who bought without another lookup.
type CustomerRef struct {
	CustomerID string `json:"_id"`
	Name       string `json:"name"`
}

// SaleResponse is the public view of a sale.
type SaleResponse struct {
	SaleID      string             `json:"_id"`
	Customer    CustomerRef        `json:"customer"`
	Products    []SaleItemResponse `json:"products"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	AmountPaid  decimal.Decimal    `json:"amountPaid"`
	SaleDate    time.Time          `json:"saleDate"`
}

// ListSalesResponse wraps the list of sales.
type ListSalesResponse struct {
	Data []SaleResponse `json:"data"`
}

// SaleDetailsResponse is the invoice view of a sale: the sale itself, its
// customer, and the customer's ledger balance before and after this sale.
type SaleDetailsResponse struct {
	SaleID          string             `json:"_id"`
	Customer        CustomerResponse   `json:"customer"`
	Products        []SaleItemResponse `json:"products"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	AmountPaid      decimal.Decimal    `json:"amountPaid"`
	SaleDate        time.Time          `json:"saleDate"`
	PreviousBalance decimal.Decimal    `json:"previousBalance"`
	NewTotalBalance decimal.Decimal    `json:"newTotalBalance"`
}

// SaleDetailsEnvelope wraps the detail payload the way the dashboard expects.
type SaleDetailsEnvelope struct {
	Data SaleDetailsResponse `json:"data"`
}

func toSaleItemResponses(items []domain.SaleItem) []SaleItemResponse {
	out := make([]SaleItemResponse, len(items))
	for i, item := range items {
		out[i] = SaleItemResponse{
			Product:     ProductRef{ProductID: item.ProductID, Name: item.ProductName},
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		}
	}
	return out
}

// ToSaleResponse converts a domain.Sale to a SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:      s.SaleID,
		Customer:    CustomerRef{CustomerID: s.CustomerID, Name: s.CustomerName},
		Products:    toSaleItemResponses(s.Items),
		TotalAmount: s.TotalAmount,
		AmountPaid:  s.AmountPaid,
		SaleDate:    s.SaleDate,
	}
}

// ToListSalesResponse converts a slice of domain.Sale to the list DTO.
func ToListSalesResponse(sales []domain.Sale) ListSalesResponse {
	resp := ListSalesResponse{Data: make([]SaleResponse, len(sales))}
	for i := range sales {
		resp.Data[i] = ToSaleResponse(&sales[i])
	}
	return resp
}

// ToSaleDetailsResponse converts a domain.SaleDetails to its DTO.
func ToSaleDetailsResponse(d *domain.SaleDetails) SaleDetailsResponse {
	return SaleDetailsResponse{
		SaleID:          d.SaleID,
		Customer:        ToCustomerResponse(&d.Customer),
		Products:        toSaleItemResponses(d.Items),
		TotalAmount:     d.TotalAmount,
		AmountPaid:      d.AmountPaid,
		SaleDate:        d.SaleDate,
		PreviousBalance: d.PreviousBalance,
		NewTotalBalance: d.NewTotalBalance,
	}
}
