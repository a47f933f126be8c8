package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the derived aggregates.
type dashboardHandler struct {
	summaryService portssvc.SummarySvc
}

// registerDashboardRoutes registers the read-only aggregate routes.
func registerDashboardRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvc) {
	h := &dashboardHandler{summaryService: summaryService}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/net-worth", h.getNetWorth)
		dashboard.GET("/cash-flow", h.getCashFlow)
		dashboard.GET("/expenses-by-category", h.getExpensesByCategory)
		dashboard.GET("/budgets", h.getBudgetProgress)
	}
}

// getDashboard godoc
// @Summary Dashboard overview
// @Description Net worth, current month income and expense, cash flow, category spending, budgets and recent transactions, formatted in the selected currency
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.summaryService.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "build dashboard")
		return
	}

	logger.Debug("Dashboard built", slog.String("currency_code", resp.CurrencyCode))
	c.JSON(http.StatusOK, resp)
}

// getNetWorth godoc
// @Summary Net worth
// @Description Assets are non-credit balances; liabilities are the absolute sum of credit balances
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.NetWorth
// @Router /dashboard/net-worth [get]
func (h *dashboardHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	netWorth, err := h.summaryService.NetWorth(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "calculate net worth")
		return
	}
	c.JSON(http.StatusOK, netWorth)
}

// getCashFlow godoc
// @Summary Monthly cash flow
// @Description Income, expense and net per month, oldest first
// @Tags dashboard
// @Produce json
// @Param months query int false "Trailing months to include (0 = all)"
// @Success 200 {array} domain.MonthlyCashFlow
// @Failure 400 {object} map[string]string "Invalid months"
// @Router /dashboard/cash-flow [get]
func (h *dashboardHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "CashFlow query")
		return
	}

	flow, err := h.summaryService.MonthlyCashFlow(c.Request.Context(), params.Months)
	if err != nil {
		respondServiceError(c, logger, err, "calculate cash flow")
		return
	}
	c.JSON(http.StatusOK, flow)
}

// getExpensesByCategory godoc
// @Summary Expenses by category
// @Description Absolute expense totals per category, largest first
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.CategoryAmount
// @Router /dashboard/expenses-by-category [get]
func (h *dashboardHandler) getExpensesByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	buckets, err := h.summaryService.ExpensesByCategory(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "calculate expenses by category")
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// getBudgetProgress godoc
// @Summary Budget progress
// @Description Spending against each budget, optionally restricted to one month
// @Tags dashboard
// @Produce json
// @Param month query string false "Month (YYYY-MM), all time when omitted"
// @Success 200 {object} domain.BudgetOverview
// @Failure 400 {object} map[string]string "Invalid month"
// @Router /dashboard/budgets [get]
func (h *dashboardHandler) getBudgetProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BudgetProgressParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "BudgetProgress query")
		return
	}

	overview, err := h.summaryService.BudgetProgress(c.Request.Context(), params.Month)
	if err != nil {
		respondServiceError(c, logger, err, "calculate budget progress")
		return
	}
	c.JSON(http.StatusOK, overview)
}
