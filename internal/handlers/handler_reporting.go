package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/raissac/budget_management_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles analytics and export requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	exportService    portssvc.ExportSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, es portssvc.ExportSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, exportService: es}
}

// registerReportingRoutes registers analytics and export routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newReportingHandler(reportingService, exportService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/balance", h.getBalance)
		transactions.GET("/expenses/by-category", h.getExpensesByCategory)
		transactions.GET("/expenses/top-categories", h.getTopSpendingCategories)
		transactions.GET("/summary/monthly", h.getMonthlySummary)
		transactions.GET("/export", h.exportTransactions)
	}
}

func authenticatedUserID(c *gin.Context) (string, bool) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			ErrorCode:        http.StatusUnauthorized,
			ErrorDescription: "Unauthorized",
		})
		return "", false
	}
	return ownerID, true
}

// getBalance godoc
// @Summary Get balance summary
// @Description Returns the authenticated user's total income, total expenses and net balance.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/balance [get]
func (h *reportingHandler) getBalance(c *gin.Context) {
	ownerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Balance(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(summary))
}

// getExpensesByCategory godoc
// @Summary Get expense totals per category
// @Description Returns the authenticated user's expense totals grouped by category, largest first.
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/expenses/by-category [get]
func (h *reportingHandler) getExpensesByCategory(c *gin.Context) {
	ownerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	totals, err := h.reportingService.TotalSpentPerCategory(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

// getTopSpendingCategories godoc
// @Summary Get top spending categories
// @Description Returns the authenticated user's three highest-spend categories.
// @Tags reporting
// @Produce json
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/expenses/top-categories [get]
func (h *reportingHandler) getTopSpendingCategories(c *gin.Context) {
	ownerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	totals, err := h.reportingService.TopSpendingCategories(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalResponses(totals))
}

// getMonthlySummary godoc
// @Summary Get monthly income/expense summary
// @Description Returns per-month income and expense totals for the given year. Months without transactions are omitted.
// @Tags reporting
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {array} dto.MonthlySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/summary/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	ownerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "year must be an integer")
			return
		}
		year = parsed
	}

	totals, err := h.reportingService.MonthlySummary(c.Request.Context(), ownerID, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponses(totals))
}

// exportTransactions godoc
// @Summary Export transactions as CSV
// @Description Streams the authenticated user's full transaction history as a CSV attachment.
// @Tags reporting
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to export transactions"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *reportingHandler) exportTransactions(c *gin.Context) {
	ownerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.exportService.ExportTransactionsCSV(c.Request.Context(), ownerID, c.Writer); err != nil {
		respondError(c, err)
		return
	}
}
