package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trackmint/finance_tracker_app/internal/apperrors"
	"github.com/trackmint/finance_tracker_app/internal/core/domain"
	portssvc "github.com/trackmint/finance_tracker_app/internal/core/ports/services"
	"github.com/trackmint/finance_tracker_app/internal/dto"
	"github.com/trackmint/finance_tracker_app/internal/handlers"
	"github.com/trackmint/finance_tracker_app/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Journal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, userID string, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PaginatedTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, journalID string, req dto.UpdateTransactionRequest) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, journalID string) error {
	args := m.Called(ctx, userID, journalID)
	return args.Error(0)
}

func (m *MockTransactionService) GetTransactionSummary(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
	userID                 string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fintrack-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransactionService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService)
}

func (suite *TransactionHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	return req
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	journalID := uuid.NewString()
	created := &domain.Journal{
		JournalID:       journalID,
		UserID:          suite.userID,
		TransactionKind: domain.Withdrawal,
		Description:     "Lunch",
		Splits: []domain.Split{{
			SplitID:  uuid.NewString(),
			Amount:   decimal.NewFromInt(12),
			Sequence: 1,
		}},
	}

	suite.mockTransactionService.On("CreateTransaction",
		mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateTransactionRequest"),
	).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"type":        "withdrawal",
		"description": "Lunch",
		"date":        time.Now().Format(time.RFC3339),
		"splits": []map[string]interface{}{
			{"sourceAccountId": uuid.NewString(), "destinationAccountId": uuid.NewString(), "amount": "12"},
		},
	})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/transactions", body))

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(journalID, response.JournalID)
	suite.Equal("withdrawal", response.Type)
	suite.Len(response.Splits, 1)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorMapsTo400() {
	suite.mockTransactionService.On("CreateTransaction",
		mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateTransactionRequest"),
	).Return(nil, fmt.Errorf("%w: bad split", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"type":        "withdrawal",
		"description": "Lunch",
		"date":        time.Now().Format(time.RFC3339),
		"splits": []map[string]interface{}{
			{"sourceAccountId": uuid.NewString(), "destinationAccountId": uuid.NewString(), "amount": "12"},
		},
	})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/transactions", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingSplitsFailsBinding() {
	body, _ := json.Marshal(map[string]interface{}{
		"type":        "withdrawal",
		"description": "Lunch",
		"date":        time.Now().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/transactions", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingTokenIs401() {
	body, _ := json.Marshal(map[string]interface{}{"type": "withdrawal"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFoundMapsTo404() {
	journalID := uuid.NewString()

	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, suite.userID, journalID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions/"+journalID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	expected := &dto.PaginatedTransactionsResponse{
		Items:      []dto.TransactionResponse{{JournalID: uuid.NewString(), Type: "deposit"}},
		Total:      1,
		Page:       1,
		Limit:      20,
		TotalPages: 1,
	}

	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Page == 1 && p.Limit == 20 && p.SortBy == "date" && p.SortDirection == "desc"
		}),
	).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions", nil))

	suite.Equal(http.StatusOK, w.Code)

	var response dto.PaginatedTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(int64(1), response.Total)
	suite.Len(response.Items, 1)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	journalID := uuid.NewString()

	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, suite.userID, journalID).
		Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+journalID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionSummary_Success() {
	summary := &domain.TransactionSummary{
		TotalTransactions:  2,
		TotalIncome:        decimal.NewFromInt(2000),
		TotalExpenses:      decimal.NewFromInt(150),
		NetFlow:            decimal.NewFromInt(1850),
		AverageTransaction: decimal.NewFromInt(1075),
	}

	suite.mockTransactionService.On("GetTransactionSummary", mock.Anything, suite.userID,
		mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time"),
	).Return(summary, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/transactions/summary?startDate=2026-01-01&endDate=2026-01-31", nil))

	suite.Equal(http.StatusOK, w.Code)

	var response dto.TransactionSummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.NetFlow.Equal(decimal.NewFromInt(1850)))
	suite.mockTransactionService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
