package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/suggest-category", h.suggestCategory)
		txns.GET("/:id", h.getTransaction)
		txns.PATCH("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description The type is derived from the amount sign. An empty category is suggested from the description.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateTransaction")
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create transaction")
		return
	}

	logger.Info("Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("category", txn.Category))
	c.JSON(http.StatusCreated, txn)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// listTransactions godoc
// @Summary List transactions
// @Description Most recent first, optionally filtered and paged
// @Tags transactions
// @Produce  json
// @Param   category query string false "Category"
// @Param   type query string false "income or expense"
// @Param   month query string false "Month (YYYY-MM)"
// @Param   account query string false "Account name or account ID"
// @Param   search query string false "Case-insensitive text to find in the description"
// @Param   limit query int false "Page size (1-100), all when omitted"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "ListTransactions query")
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// suggestCategory godoc
// @Summary Suggest a category for a description
// @Tags transactions
// @Produce  json
// @Param   description query string true "Transaction description"
// @Success 200 {object} dto.SuggestCategoryResponse
// @Failure 400 {object} map[string]string "Missing description"
// @Router /transactions/suggest-category [get]
func (h *transactionHandler) suggestCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SuggestCategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "SuggestCategory query")
		return
	}

	c.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Description: params.Description,
		Category:    h.transactionService.SuggestCategory(params.Description),
	})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Merges the provided fields. The type is recomputed when the amount changes.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateTransaction")
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, txn)
}

// deleteTransaction godoc
// @Summary Remove a transaction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	if err := h.transactionService.RemoveTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "remove transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
