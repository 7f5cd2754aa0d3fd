package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/dto"
	"github.com/SscSPs/quote_pricing_app/internal/handlers"
	"github.com/SscSPs/quote_pricing_app/internal/middleware"
	"github.com/SscSPs/quote_pricing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, input domain.QuoteInput) (*domain.QuoteResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteResult), args.Error(1)
}

func (m *MockQuoteService) QuoteBatch(ctx context.Context, inputs []domain.QuoteInput) ([]domain.BatchItem, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchItem), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type QuoteHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockQuoteService *MockQuoteService
	mockHealth       *MockHealthChecker
	cfg              *config.Config
}

func (suite *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockQuoteService = new(MockQuoteService)
	suite.mockHealth = new(MockHealthChecker)
	suite.cfg = &config.Config{}
	suite.router = suite.newRouter(suite.cfg)
}

func (suite *QuoteHandlerTestSuite) newRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.DiscardHandler)))
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Quote:  suite.mockQuoteService,
		Health: suite.mockHealth,
	}, nil)
	return r
}

func (suite *QuoteHandlerTestSuite) post(path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *QuoteHandlerTestSuite) TestCreateQuote_Success() {
	expected := &domain.QuoteResult{
		SKU: "SKU-001", Quantity: 10, Currency: "USD", UnitPrice: "10.00", TotalPrice: "100.00",
		Breakdown: domain.QuoteBreakdown{
			Cost:            domain.CostBreakdown{Source: domain.CostSourceSupplierQuote, Currency: "USD", UnitCost: "10.0000", Quantity: 10, Subtotal: "100.0000"},
			RuleAdjustments: []domain.RuleAdjustment{},
		},
	}
	suite.mockQuoteService.On("Quote", mock.Anything, mock.MatchedBy(func(in domain.QuoteInput) bool {
		return in.SKU == "SKU-001" && in.Quantity == 10 && in.TargetCurrency != nil && *in.TargetCurrency == "USD"
	})).Return(expected, nil).Once()

	w := suite.post("/api/v1/quotes", `{"sku":"SKU-001","quantity":10,"targetCurrency":"USD"}`, map[string]string{middleware.TraceIDHeader: "trace-123"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("trace-123", w.Header().Get(middleware.TraceIDHeader))

	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("trace-123", resp.TraceID)
	suite.Equal(expected, resp.Data)

	var raw map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	cost := raw["data"].(map[string]any)["breakdown"].(map[string]any)["cost"].(map[string]any)
	_, hasExchange := cost["exchange"]
	suite.False(hasExchange)
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_ParsesAt() {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	suite.mockQuoteService.On("Quote", mock.Anything, mock.MatchedBy(func(in domain.QuoteInput) bool {
		return in.At != nil && in.At.Equal(at) && in.Region != nil && *in.Region == "EU"
	})).Return(&domain.QuoteResult{SKU: "SKU-001"}, nil).Once()

	w := suite.post("/api/v1/quotes", `{"sku":"SKU-001","quantity":1,"region":"EU","at":"2025-01-02T03:04:05Z"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_MalformedJSON() {
	w := suite.post("/api/v1/quotes", `{"sku":`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("VALIDATION_ERROR", resp.Error.Code)
	suite.NotEmpty(resp.TraceID)
	suite.mockQuoteService.AssertNotCalled(suite.T(), "Quote", mock.Anything, mock.Anything)
}

func (suite *QuoteHandlerTestSuite) TestCreateQuote_ErrorMapping() {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", apperrors.NewValidationError("quantity failed on the 'gt' rule"), http.StatusBadRequest, "VALIDATION_ERROR", "quantity failed on the 'gt' rule"},
		{"sku not found", apperrors.NewSkuNotFoundError("GHOST"), http.StatusNotFound, "SKU_NOT_FOUND", "SKU not found: GHOST"},
		{"no cost", apperrors.NewNoCostError(), http.StatusBadRequest, "NO_COST", "No cost found for conditions"},
		{"no rate", apperrors.NewNoRateError("USD", "JPY"), http.StatusBadRequest, "NO_RATE", "Exchange rate not found for USD to JPY"},
		{"internal", apperrors.NewInternalError(fmt.Errorf("password authentication failed for user quotes")), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.mockQuoteService.On("Quote", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := suite.post("/api/v1/quotes", `{"sku":"X","quantity":1}`, nil)

			suite.Equal(tc.status, w.Code)
			var resp dto.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.Equal(tc.code, resp.Error.Code)
			suite.Equal(tc.message, resp.Error.Message)
			suite.NotContains(w.Body.String(), "password")
		})
	}
}

func (suite *QuoteHandlerTestSuite) TestCreateBatchQuote_Success() {
	items := []domain.BatchItem{
		{Index: 0, Result: &domain.QuoteResult{SKU: "A", Quantity: 1}},
		{Index: 1, Error: &domain.ErrorDescriptor{Kind: "NO_COST", Message: "No cost found for conditions"}},
	}
	suite.mockQuoteService.On("QuoteBatch", mock.Anything, mock.MatchedBy(func(in []domain.QuoteInput) bool {
		return len(in) == 2 && in[0].SKU == "A" && in[1].SKU == "B"
	})).Return(items, nil).Once()

	w := suite.post("/api/v1/quotes/batch", `{"items":[{"sku":"A","quantity":1},{"sku":"B","quantity":2}]}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BatchQuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(items, resp.Data)

	var raw map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	first := raw["data"].([]any)[0].(map[string]any)
	_, hasError := first["error"]
	suite.False(hasError)
	second := raw["data"].([]any)[1].(map[string]any)
	suite.Equal("NO_COST", second["error"].(map[string]any)["code"])
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestCreateBatchQuote_Rejected() {
	suite.mockQuoteService.On("QuoteBatch", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("batch must contain at most 1 items")).Once()

	w := suite.post("/api/v1/quotes/batch", `{"items":[{"sku":"A","quantity":1},{"sku":"B","quantity":1}]}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "VALIDATION_ERROR")
}

func (suite *QuoteHandlerTestSuite) TestCreateBatchQuote_Empty() {
	suite.mockQuoteService.On("QuoteBatch", mock.Anything, mock.Anything).
		Return([]domain.BatchItem{}, nil).Once()

	w := suite.post("/api/v1/quotes/batch", `{"items":[]}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	var raw map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	suite.Equal([]any{}, raw["data"])
	suite.mockQuoteService.AssertExpectations(suite.T())
}

func (suite *QuoteHandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"ok"`)
	suite.NotContains(w.Body.String(), `"db"`)
}

func (suite *QuoteHandlerTestSuite) TestDeepHealth() {
	suite.mockHealth.On("Ping", mock.Anything).Return(nil).Once()
	req, _ := http.NewRequest(http.MethodGet, "/health/deep", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"db":true`)

	suite.mockHealth.On("Ping", mock.Anything).Return(assert.AnError).Once()
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), `"status":"degraded"`)
	suite.Contains(w.Body.String(), `"db":false`)
}

func (suite *QuoteHandlerTestSuite) TestAuthRequiredWhenSecretSet() {
	secret := "test-secret-key-that-is-long-enough"
	suite.router = suite.newRouter(&config.Config{JWTSecret: secret})

	w := suite.post("/api/v1/quotes", `{"sku":"A","quantity":1}`, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "UNAUTHORIZED")

	claims := jwt.RegisteredClaims{
		Subject:   "svc-checkout",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	suite.Require().NoError(err)

	suite.mockQuoteService.On("Quote", mock.Anything, mock.Anything).Return(&domain.QuoteResult{SKU: "A"}, nil).Once()
	w = suite.post("/api/v1/quotes", `{"sku":"A","quantity":1}`, map[string]string{"Authorization": "Bearer " + token})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *QuoteHandlerTestSuite) TestUnknownRoute() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), `"code":"NOT_FOUND"`)
}

// --- Run Test Suite ---
func TestQuoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}
