package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	"github.com/raissac/budget_management_backend/internal/core/domain"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/handlers"
	"github.com/raissac/budget_management_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, criteria domain.FilterCriteria, page, size int) (*dto.PageResponse[dto.TransactionResponse], error) {
	args := m.Called(ctx, ownerID, criteria, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PageResponse[dto.TransactionResponse]), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID, ownerID string) error {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Balance(ctx context.Context, ownerID string) (*domain.BalanceSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

func (m *MockReportingService) TotalSpentPerCategory(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) TopSpendingCategories(ctx context.Context, ownerID string) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingService) MonthlySummary(ctx context.Context, ownerID string, year int) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, ownerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTransactionsCSV(ctx context.Context, ownerID string, w io.Writer) error {
	args := m.Called(ctx, ownerID, w)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("ID,Amount,Date,Description,Type,Category\n"))
	}
	return args.Error(0)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTxnService  *MockTransactionService
	mockReporting   *MockReportingService
	mockExport      *MockExportService
	jwtSecret       string
	authorizedUser  string
	authorizedToken string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "budget-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.authorizedUser = uuid.NewString()
	suite.authorizedToken = suite.generateTestToken(suite.authorizedUser)

	suite.mockTxnService = new(MockTransactionService)
	suite.mockReporting = new(MockReportingService)
	suite.mockExport = new(MockExportService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	services := &portssvc.ServiceContainer{
		Transaction: suite.mockTxnService,
		Reporting:   suite.mockReporting,
		Export:      suite.mockExport,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.authorizedToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	amount := decimal.RequireFromString("80.5")
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       suite.authorizedUser,
		Amount:        amount,
		Date:          time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Pizza Night",
		Type:          domain.Expense,
		CategoryName:  "Food",
	}

	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Amount != nil && req.Amount.Equal(amount) && req.Type == "EXPENSE"
	}), suite.authorizedUser).Return(txn, nil).Once()

	body := []byte(`{"amount":80.5,"date":"2025-02-01","description":"Pizza Night","type":"EXPENSE","categoryId":"cat-1"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Food", resp.CategoryName)
	suite.Equal("2025-02-01", resp.Date)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorsReturned() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, mock.Anything, suite.authorizedUser).
		Return(nil, apperrors.NewValidationError("Amount is required", "Type is required")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", []byte(`{}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"Amount is required", "Type is required"}, resp.ValidationErrors)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ParsesFilterQuery() {
	suite.mockTxnService.On("ListTransactions", mock.Anything, suite.authorizedUser, mock.MatchedBy(func(c domain.FilterCriteria) bool {
		return c.MinAmount != nil && c.MinAmount.Equal(decimal.RequireFromString("10")) &&
			c.Type != nil && *c.Type == domain.Expense &&
			c.StartDate != nil && c.StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			c.MaxAmount == nil && c.EndDate == nil && c.CategoryID == nil
	}), 1, 10).Return(&dto.PageResponse[dto.TransactionResponse]{
		Content: []dto.TransactionResponse{},
		Page:    1,
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?minAmount=10&type=EXPENSE&startDate=2025-01-01&page=1&size=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RejectsBadQuery() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?minAmount=abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doRequest(http.MethodGet, "/api/v1/transactions?type=TRANSFER", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doRequest(http.MethodGet, "/api/v1/transactions?startDate=01-02-2025", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockTxnService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, txnID, suite.authorizedUser).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_ForeignOwnerForbidden() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, txnID, suite.authorizedUser).
		Return(apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_MissingIsNotFound() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, txnID, suite.authorizedUser).
		Return(apperrors.ErrTransactionNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestRequestWithoutTokenIsUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetBalance() {
	suite.mockReporting.On("Balance", mock.Anything, suite.authorizedUser).Return(&domain.BalanceSummary{
		TotalIncome:   decimal.RequireFromString("40"),
		TotalExpenses: decimal.RequireFromString("221"),
		Balance:       decimal.RequireFromString("-181"),
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("-181")))
}

func (suite *TransactionHandlerTestSuite) TestGetMonthlySummary_UpperCaseMonthNames() {
	suite.mockReporting.On("MonthlySummary", mock.Anything, suite.authorizedUser, 2025).
		Return([]domain.MonthlyTotal{
			{Month: time.January, Income: decimal.RequireFromString("1000"), Expenses: decimal.RequireFromString("750")},
		}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/summary/monthly?year=2025", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.MonthlySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("JANUARY", resp[0].Month)
}

func (suite *TransactionHandlerTestSuite) TestExportTransactions_CSVAttachment() {
	suite.mockExport.On("ExportTransactionsCSV", mock.Anything, suite.authorizedUser, mock.Anything).Return(nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
	suite.Contains(w.Body.String(), "ID,Amount,Date,Description,Type,Category")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
