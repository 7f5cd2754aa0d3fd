package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/dto"
	"github.com/SscSPs/quote_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quoteHandler handles HTTP requests for price quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService: qs,
	}
}

// RegisterQuoteRoutes registers routes related to quotes.
func RegisterQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.POST("/batch", h.createBatchQuote)
	}
}

// createQuote prices a single request.
// POST /api/v1/quotes
func (h *quoteHandler) createQuote(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuote", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	result, err := h.quoteService.Quote(ctx, req.ToDomain())
	if err != nil {
		logger.Warn("Quote request failed",
			slog.String("sku", req.SKU),
			slog.String("code", string(apperrors.KindOf(err))),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		TraceID: middleware.GetTraceIDFromCtx(ctx),
		Data:    result,
	})
}

// createBatchQuote prices every item of a batch. Per-item failures are reported
// inside the 200 response; only a malformed batch fails the request.
// POST /api/v1/quotes/batch
func (h *quoteHandler) createBatchQuote(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.BatchQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBatchQuote", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	items, err := h.quoteService.QuoteBatch(ctx, req.ToDomain())
	if err != nil {
		logger.Warn("Batch quote request rejected", slog.Int("items", len(req.Items)), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Batch quote completed", slog.Int("items", len(items)))
	c.JSON(http.StatusOK, dto.BatchQuoteResponse{
		TraceID: middleware.GetTraceIDFromCtx(ctx),
		Data:    items,
	})
}

// respondError writes the error envelope. Messages of 5xx errors are withheld.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusOf(err), dto.ErrorResponse{
		TraceID: middleware.GetTraceIDFromCtx(c.Request.Context()),
		Error: dto.ErrorBody{
			Code:    string(apperrors.KindOf(err)),
			Message: apperrors.PublicMessage(err),
		},
	})
}
