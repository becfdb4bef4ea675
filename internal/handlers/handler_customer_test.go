package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/dto"
	"github.com/shopforge/shop_manager_app/internal/middleware"
	"github.com/shopforge/shop_manager_app/internal/platform/config"
	"github.com/shopforge/shop_manager_app/internal/render"
	"github.com/shopforge/shop_manager_app/internal/utils"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerLedger), args.Error(1)
}
func (m *MockLedgerService) CustomerLedgerEntries(ctx context.Context, customerID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	mockLedgerService   *MockLedgerService
	jwtSecret           string
}

func (suite *CustomerHandlerTestSuite) generateTestToken(userID string) string {
	token, _, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test-issuer")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCustomerService = new(MockCustomerService)
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	cfg := &config.Config{ShopName: "Test Shop"}
	registerCustomerRoutes(v1, suite.mockCustomerService, suite.mockLedgerService, render.NewHTMLRenderer(), cfg)
}

func (suite *CustomerHandlerTestSuite) doRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CustomerHandlerTestSuite) sampleLedger(customerID string) *domain.CustomerLedger {
	saleDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paymentDate := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	saleEntry := domain.LedgerEntryWithBalance{
		LedgerEntry: domain.LedgerEntry{
			EntryID:     "sale-1",
			Type:        domain.EntrySale,
			Date:        saleDate,
			Description: "Invoice #abc123",
			Debit:       decimal.NewFromInt(1000),
			Credit:      decimal.NewFromInt(400),
			OriginalID:  "sale-1",
		},
		RunningBalanceAfter: decimal.NewFromInt(-600),
	}
	paymentEntry := domain.LedgerEntryWithBalance{
		LedgerEntry: domain.LedgerEntry{
			EntryID:     "payment-1",
			Type:        domain.EntryPayment,
			Date:        paymentDate,
			Description: "Payment received",
			Debit:       decimal.Zero,
			Credit:      decimal.NewFromInt(600),
			OriginalID:  "payment-1",
		},
		RunningBalanceAfter: decimal.Zero,
	}

	return &domain.CustomerLedger{
		Customer:      domain.Customer{CustomerID: customerID, Name: "Rahim Traders", Phone: "01712345678"},
		TotalDebit:    decimal.NewFromInt(1000),
		TotalCredit:   decimal.NewFromInt(1000),
		Balance:       decimal.Zero,
		OrderedByDate: []domain.LedgerEntryWithBalance{saleEntry, paymentEntry},
		DisplayOrder:  []domain.LedgerEntryWithBalance{paymentEntry, saleEntry},
	}
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerLedger_Success() {
	customerID := uuid.NewString()
	suite.mockLedgerService.On("GetCustomerLedger", mock.Anything, customerID).
		Return(suite.sampleLedger(customerID), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/ledger", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(customerID, resp.Customer.CustomerID)
	suite.True(resp.Balance.IsZero())
	suite.Require().Len(resp.Transactions, 2)
	// Most recent first: the payment precedes the sale.
	suite.Equal("payment-1", resp.Transactions[0].ID)
	suite.Equal("sale-1", resp.Transactions[1].ID)
	suite.True(resp.Transactions[1].RunningBalanceAfter.Equal(decimal.NewFromInt(-600)))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerLedger_CustomerNotFound() {
	customerID := uuid.NewString()
	suite.mockLedgerService.On("GetCustomerLedger", mock.Anything, customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/ledger", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerLedger_MissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/some-id/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetCustomerLedger")
}

func (suite *CustomerHandlerTestSuite) TestPrintCustomerLedger_RendersHTML() {
	customerID := uuid.NewString()
	suite.mockLedgerService.On("GetCustomerLedger", mock.Anything, customerID).
		Return(suite.sampleLedger(customerID), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/ledger/print", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	suite.Contains(body, "Test Shop")
	suite.Contains(body, "Rahim Traders")
	suite.Contains(body, "৳1,000")
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	created := &domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       "Karim Stores",
		Phone:      "01812345678",
	}
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
		return req.Name == "Karim Stores" && req.Phone == "01812345678"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(dto.CreateCustomerRequest{Name: "Karim Stores", Phone: "01812345678"})
	w := suite.doRequest(http.MethodPost, "/api/v1/customers", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.CustomerID, resp.CustomerID)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_DuplicatePhone() {
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(dto.CreateCustomerRequest{Name: "Karim Stores", Phone: "01812345678"})
	w := suite.doRequest(http.MethodPost, "/api/v1/customers", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_WithHistoryReturnsConflict() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("DeleteCustomer", mock.Anything, customerID).
		Return(apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/customers/"+customerID, nil)

	suite.Equal(http.StatusConflict, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "cannot be deleted")
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_InvalidPhoneRejected() {
	body, _ := json.Marshal(dto.CreateCustomerRequest{Name: "Karim Stores", Phone: "not-a-phone"})
	w := suite.doRequest(http.MethodPost, "/api/v1/customers", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "CreateCustomer")
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
