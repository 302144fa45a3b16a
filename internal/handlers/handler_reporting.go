package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// reportingHandler serves read-only financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers reporting specific routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/retained-earnings", h.retainedEarnings)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Lists every active account's balance in its debit or credit column with totals.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{Report: *report})
}

// incomeStatement godoc
// @Summary Income statement
// @Tags reports
// @Produce json
// @Success 200 {object} dto.IncomeStatementResponse
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IncomeStatementResponse{Report: *report})
}

// balanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{Report: *report})
}

// retainedEarnings godoc
// @Summary Retained earnings statement
// @Tags reports
// @Produce json
// @Success 200 {object} dto.RetainedEarningsResponse
// @Router /reports/retained-earnings [get]
func (h *reportingHandler) retainedEarnings(c *gin.Context) {
	report, err := h.reportingService.RetainedEarnings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
