package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/raissac/budget_management_backend/internal/core/domain"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a new transaction
// @Description Records an income or expense transaction for the authenticated user.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User or category not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			ErrorCode:        http.StatusUnauthorized,
			ErrorDescription: "Unauthorized",
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// parseFilterCriteria reads the optional filter query parameters. Absent
// parameters contribute nothing; malformed ones fail the request.
func parseFilterCriteria(c *gin.Context) (domain.FilterCriteria, bool) {
	var criteria domain.FilterCriteria

	if raw := c.Query("minAmount"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			respondBadRequest(c, "minAmount must be a decimal number")
			return criteria, false
		}
		criteria.MinAmount = &v
	}
	if raw := c.Query("maxAmount"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			respondBadRequest(c, "maxAmount must be a decimal number")
			return criteria, false
		}
		criteria.MaxAmount = &v
	}
	if raw := c.Query("startDate"); raw != "" {
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondBadRequest(c, "startDate must be in format YYYY-MM-DD")
			return criteria, false
		}
		criteria.StartDate = &v
	}
	if raw := c.Query("endDate"); raw != "" {
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondBadRequest(c, "endDate must be in format YYYY-MM-DD")
			return criteria, false
		}
		criteria.EndDate = &v
	}
	if raw := c.Query("type"); raw != "" {
		t := domain.TransactionType(raw)
		if !t.IsValid() {
			respondBadRequest(c, "type must be INCOME or EXPENSE")
			return criteria, false
		}
		criteria.Type = &t
	}
	if raw := c.Query("categoryId"); raw != "" {
		criteria.CategoryID = &raw
	}

	return criteria, true
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns one page of the authenticated user's transactions, optionally filtered by amount range, date range, type and category.
// @Tags transactions
// @Produce json
// @Param minAmount query string false "Minimum amount (inclusive)"
// @Param maxAmount query string false "Maximum amount (inclusive)"
// @Param startDate query string false "Start date YYYY-MM-DD (inclusive)"
// @Param endDate query string false "End date YYYY-MM-DD (inclusive)"
// @Param type query string false "Transaction type (INCOME or EXPENSE)"
// @Param categoryId query string false "Category ID"
// @Param page query int false "Page number, 0-based" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.PageResponse[dto.TransactionResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			ErrorCode:        http.StatusUnauthorized,
			ErrorDescription: "Unauthorized",
		})
		return
	}

	criteria, ok := parseFilterCriteria(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), ownerID, criteria, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes one of the authenticated user's transactions. Deleting another user's transaction is denied; deleting an unknown ID reports not found.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			ErrorCode:        http.StatusUnauthorized,
			ErrorDescription: "Unauthorized",
		})
		return
	}

	transactionID := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
