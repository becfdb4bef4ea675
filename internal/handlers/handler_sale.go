package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/dto"
	"github.com/shopforge/shop_manager_app/internal/middleware"
	"github.com/shopforge/shop_manager_app/internal/platform/config"
	"github.com/shopforge/shop_manager_app/internal/render"
)

// saleHandler handles HTTP requests related to sales and invoices.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
	renderer    render.Renderer
	shopName    string
}

func newSaleHandler(saleService portssvc.SaleSvcFacade, renderer render.Renderer, shopName string) *saleHandler {
	return &saleHandler{saleService: saleService, renderer: renderer, shopName: shopName}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, renderer render.Renderer, cfg *config.Config) {
	h := newSaleHandler(saleService, renderer, cfg.ShopName)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSaleDetails)
		sales.GET("/:id/invoice", h.printInvoice)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale, decrements stock atomically, and adds the unpaid remainder to the customer's due
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Customer or product not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer or product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Not enough stock for one or more products"})
		default:
			logger.Error("Failed to record sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record sale"})
		}
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("customer_id", sale.CustomerID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a paginated list of sales, newest first
// @Tags sales
// @Produce json
// @Param limit query int false "Maximum sales to return" default(50)
// @Param offset query int false "Number of sales to skip" default(0)
// @Success 200 {object} dto.ListSalesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}

// getSaleDetails godoc
// @Summary Get sale details
// @Description Retrieves a sale with its customer and the ledger balances before and after the sale
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleDetailsEnvelope
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSaleDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	details, err := h.saleService.GetSaleDetails(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sale not found"})
			return
		}
		logger.Error("Failed to get sale details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get sale details"})
		return
	}

	c.JSON(http.StatusOK, dto.SaleDetailsEnvelope{Data: dto.ToSaleDetailsResponse(details)})
}

// printInvoice godoc
// @Summary Printable invoice
// @Description Renders the invoice for a sale as a printable HTML page
// @Tags sales
// @Produce html
// @Param id path string true "Sale ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/invoice [get]
func (h *saleHandler) printInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	details, err := h.saleService.GetSaleDetails(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sale not found"})
			return
		}
		logger.Error("Failed to get sale details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get sale details"})
		return
	}

	html, err := h.renderer.RenderInvoice(h.shopName, details)
	if err != nil {
		logger.Error("Failed to render invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render invoice"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
