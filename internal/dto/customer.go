package dto

import (
	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// CreateCustomerRequest defines the data for creating a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required,phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateCustomerRequest defines the data allowed when updating a customer.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone" binding:"omitempty,phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// CustomerResponse is the public view of a customer.
type CustomerResponse struct {
	CustomerID string `json:"_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Data []CustomerResponse `json:"data"`
}

// ToCustomerResponse converts a domain.Customer to a CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
	}
}

// ToListCustomersResponse converts a slice of domain.Customer to the list DTO.
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	resp := ListCustomersResponse{Data: make([]CustomerResponse, len(customers))}
	for i := range customers {
		resp.Data[i] = ToCustomerResponse(&customers[i])
	}
	return resp
}
