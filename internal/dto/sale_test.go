package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shopforge/shop_manager_app/internal/core/domain"
)

// The dashboard renders sale.customer.name in list views, so the customer
// field must serialize as an object carrying both the id and the name.
func TestToSaleResponse_CustomerSerializesAsObject(t *testing.T) {
	sale := domain.Sale{
		SaleID:       "sale-1",
		CustomerID:   "cust-1",
		CustomerName: "Karim Store",
		Items: []domain.SaleItem{
			{ProductID: "prod-1", ProductName: "Rice 5kg", Quantity: 2, PriceAtSale: decimal.NewFromInt(450)},
		},
		TotalAmount: decimal.NewFromInt(900),
		AmountPaid:  decimal.NewFromInt(500),
		SaleDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(ToListSalesResponse([]domain.Sale{sale}))
	require.NoError(t, err)

	var payload struct {
		Data []struct {
			SaleID   string `json:"_id"`
			Customer struct {
				CustomerID string `json:"_id"`
				Name       string `json:"name"`
			} `json:"customer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Data, 1)
	require.Equal(t, "sale-1", payload.Data[0].SaleID)
	require.Equal(t, "cust-1", payload.Data[0].Customer.CustomerID)
	require.Equal(t, "Karim Store", payload.Data[0].Customer.Name)
}
