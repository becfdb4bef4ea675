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
	"github.com/shopforge/shop_manager_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockCustomerRepo)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1", Name: "Karim Store"}

	req := dto.CreatePaymentRequest{
		Customer: "cust-1",
		Amount:   decimal.NewFromInt(750),
		Date:     "2026-01-15",
		Notes:    "cash",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.CustomerID == "cust-1" &&
			p.Amount.Equal(decimal.NewFromInt(750)) &&
			p.Date.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)) &&
			p.Notes == "cash"
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		req := dto.CreatePaymentRequest{Customer: "cust-1", Amount: amount}

		payment, err := suite.service.RecordPayment(ctx, req)

		suite.Require().Error(err)
		suite.Nil(payment)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BadDate() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerID: "cust-1"}

	req := dto.CreatePaymentRequest{
		Customer: "cust-1",
		Amount:   decimal.NewFromInt(100),
		Date:     "15/01/2026",
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "cust-1").Return(customer, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_CustomerNotFound() {
	ctx := context.Background()

	req := dto.CreatePaymentRequest{Customer: "missing", Amount: decimal.NewFromInt(100)}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.RecordPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
