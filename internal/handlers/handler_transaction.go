package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	portssvc "github.com/SscSPs/purchase_transactions/internal/core/ports/services"
	"github.com/SscSPs/purchase_transactions/internal/dto"
	"github.com/SscSPs/purchase_transactions/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to purchase transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to purchase transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	rg.POST("/transaction", h.createTransaction)
	rg.GET("/transaction", h.enquireLastTransaction)
	rg.GET("/transactions", h.listTransactions)
}

// createTransaction godoc
// @Summary Record a purchase transaction
// @Description Stores a purchase in USD. The amount must be non-negative with at most two decimal places and the description at most 50 characters.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Purchase details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transaction [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.Int64("transaction_id", tx.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// enquireLastTransaction godoc
// @Summary Get the latest transaction in a foreign currency
// @Description Converts the most recently created transaction with the Treasury rate published within six months before its purchase date.
// @Tags transactions
// @Produce  json
// @Param   currency query string true "Treasury currency label, e.g. Canada-Dollar"
// @Success 200 {object} dto.EnquireLastTransactionResponse
// @Failure 400 {object} map[string]string "Currency missing or invalid"
// @Failure 404 {object} map[string]string "No transaction record found"
// @Failure 422 {object} map[string]string "Exchange rate not found"
// @Failure 502 {object} map[string]string "Exchange rate service unavailable"
// @Security BearerAuth
// @Router /transaction [get]
func (h *transactionHandler) enquireLastTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.CurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency", query.Currency))

	view, err := h.transactionService.EnquireLastTransaction(c.Request.Context(), query.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to enquire transaction")
		return
	}

	c.JSON(http.StatusOK, dto.EnquireLastTransactionResponse{
		Transaction: dto.ToConvertedTransactionResponse(view),
	})
}

// listTransactions godoc
// @Summary List all transactions in a foreign currency
// @Description Converts every stored transaction. If any one of them has no usable rate the whole request fails.
// @Tags transactions
// @Produce  json
// @Param   currency query string true "Treasury currency label, e.g. Canada-Dollar"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Currency missing or invalid"
// @Failure 422 {object} map[string]string "Exchange rate not found"
// @Failure 502 {object} map[string]string "Exchange rate service unavailable"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.CurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency", query.Currency))

	views, err := h.transactionService.ListTransactions(c.Request.Context(), query.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed", slog.Int("count", len(views)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(views))
}

// respondWithError writes err as {"error": message}. Unclassified errors get fallback
// so internal details stay out of the response.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	if status == http.StatusBadGateway {
		logger.Error("Exchange rate source failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": apperrors.Message(err, fallback)})
}
