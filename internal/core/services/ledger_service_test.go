package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopforge/shop_manager_app/internal/apperrors"
	"github.com/shopforge/shop_manager_app/internal/core/domain"
	portssvc "github.com/shopforge/shop_manager_app/internal/core/ports/services"
	"github.com/shopforge/shop_manager_app/internal/core/services"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) FindSalesByCustomerID(ctx context.Context, customerID string) ([]domain.Sale, error) {
	args := m.Called(ctx, customerID)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentsByCustomerID(ctx context.Context, customerID string) ([]domain.Payment, error) {
	args := m.Called(ctx, customerID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockSaleRepo     *MockSaleRepository
	mockPaymentRepo  *MockPaymentRepository
	service          portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewLedgerService(suite.mockCustomerRepo, suite.mockSaleRepo, suite.mockPaymentRepo)
}

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_Success() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1", Name: "Rahim Traders"}

	sales := []domain.Sale{
		{
			SaleID:      "sale-1",
			CustomerID:  "cust-1",
			TotalAmount: decimal.NewFromInt(1000),
			AmountPaid:  decimal.NewFromInt(400),
			SaleDate:    day(1),
			AuditFields: domain.AuditFields{CreatedAt: day(1)},
		},
	}
	payments := []domain.Payment{
		{
			PaymentID:   "pay-1",
			CustomerID:  "cust-1",
			Amount:      decimal.NewFromInt(600),
			Date:        day(3),
			AuditFields: domain.AuditFields{CreatedAt: day(3)},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockSaleRepo.On("FindSalesByCustomerID", ctx, "cust-1").Return(sales, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByCustomerID", ctx, "cust-1").Return(payments, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, "cust-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(ledger)
	suite.Equal("Rahim Traders", ledger.Customer.Name)
	suite.True(ledger.TotalDebit.Equal(decimal.NewFromInt(1000)))
	suite.True(ledger.TotalCredit.Equal(decimal.NewFromInt(1000)))
	suite.True(ledger.Balance.IsZero())

	suite.Require().Len(ledger.OrderedByDate, 2)
	suite.Equal("sale-1", ledger.OrderedByDate[0].EntryID)
	suite.True(ledger.OrderedByDate[0].RunningBalanceAfter.Equal(decimal.NewFromInt(-600)))
	suite.Equal("pay-1", ledger.OrderedByDate[1].EntryID)
	suite.True(ledger.OrderedByDate[1].RunningBalanceAfter.IsZero())

	// Display order is newest first without recomputing balances.
	suite.Require().Len(ledger.DisplayOrder, 2)
	suite.Equal("pay-1", ledger.DisplayOrder[0].EntryID)
	suite.Equal("sale-1", ledger.DisplayOrder[1].EntryID)

	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_CustomerNotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(ledger)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCustomerLedgerEntries_SaleDescriptionsAndAmounts() {
	ctx := context.Background()

	sales := []domain.Sale{
		{
			SaleID:      "sale-abcdef123456",
			CustomerID:  "cust-1",
			TotalAmount: decimal.NewFromInt(500),
			AmountPaid:  decimal.NewFromInt(500),
			SaleDate:    day(5),
			AuditFields: domain.AuditFields{CreatedAt: day(5)},
		},
	}
	payments := []domain.Payment{
		{
			PaymentID:   "pay-1",
			CustomerID:  "cust-1",
			Amount:      decimal.NewFromInt(200),
			Date:        day(6),
			Notes:       "bKash",
			AuditFields: domain.AuditFields{CreatedAt: day(6)},
		},
	}

	suite.mockSaleRepo.On("FindSalesByCustomerID", ctx, "cust-1").Return(sales, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByCustomerID", ctx, "cust-1").Return(payments, nil).Once()

	entries, err := suite.service.CustomerLedgerEntries(ctx, "cust-1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	suite.Equal(domain.EntrySale, entries[0].Type)
	suite.Equal("Invoice #123456", entries[0].Description)
	suite.True(entries[0].Debit.Equal(decimal.NewFromInt(500)))
	suite.True(entries[0].Credit.Equal(decimal.NewFromInt(500)))
	suite.Equal("sale-abcdef123456", entries[0].OriginalID)

	suite.Equal(domain.EntryPayment, entries[1].Type)
	suite.Equal("Payment received (bKash)", entries[1].Description)
	suite.True(entries[1].Debit.IsZero())
	suite.True(entries[1].Credit.Equal(decimal.NewFromInt(200)))
}

func (suite *LedgerServiceTestSuite) TestCustomerLedgerEntries_SameDateOrderedByCreation() {
	ctx := context.Background()
	saleDate := day(10)

	sales := []domain.Sale{
		{
			SaleID:      "sale-late",
			CustomerID:  "cust-1",
			TotalAmount: decimal.NewFromInt(300),
			SaleDate:    saleDate,
			AuditFields: domain.AuditFields{CreatedAt: saleDate.Add(2 * time.Hour)},
		},
	}
	payments := []domain.Payment{
		{
			PaymentID:   "pay-early",
			CustomerID:  "cust-1",
			Amount:      decimal.NewFromInt(300),
			Date:        saleDate,
			AuditFields: domain.AuditFields{CreatedAt: saleDate.Add(1 * time.Hour)},
		},
	}

	suite.mockSaleRepo.On("FindSalesByCustomerID", ctx, "cust-1").Return(sales, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByCustomerID", ctx, "cust-1").Return(payments, nil).Once()

	entries, err := suite.service.CustomerLedgerEntries(ctx, "cust-1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("pay-early", entries[0].EntryID)
	suite.Equal("sale-late", entries[1].EntryID)
}

func (suite *LedgerServiceTestSuite) TestGetCustomerLedger_EmptyHistory() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-2", Name: "New Customer"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-2").Return(customer, nil).Once()
	suite.mockSaleRepo.On("FindSalesByCustomerID", ctx, "cust-2").Return([]domain.Sale{}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByCustomerID", ctx, "cust-2").Return([]domain.Payment{}, nil).Once()

	ledger, err := suite.service.GetCustomerLedger(ctx, "cust-2")

	suite.Require().NoError(err)
	suite.True(ledger.TotalDebit.IsZero())
	suite.True(ledger.TotalCredit.IsZero())
	suite.True(ledger.Balance.IsZero())
	suite.Empty(ledger.OrderedByDate)
	suite.Empty(ledger.DisplayOrder)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
