package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/reports"
)

// ReportController serves the derived report resources. All reports are
// computed on request, none of them are persisted.
type ReportController struct {
	Service *reports.Service
}

// RegisterReportRoutes registers the routes for the reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup, svc *reports.Service) {
	ctrl := ReportController{Service: svc}

	r.OPTIONS("/monthly-total", httputil.OptionsGet)
	r.GET("/monthly-total", ctrl.GetMonthlyTotal)

	r.OPTIONS("/available-balance", httputil.OptionsGet)
	r.GET("/available-balance", ctrl.GetAvailableBalance)

	r.OPTIONS("/expense-chart", httputil.OptionsGet)
	r.GET("/expense-chart", ctrl.GetExpenseChart)
}

type MonthlyTotalResponse struct {
	Data *reports.MonthlyTotal `json:"data"` // Data for the monthly total
}

type AvailableBalanceResponse struct {
	Data *reports.AvailableBalance `json:"data"` // Data for the available balance
}

type ExpenseChartResponse struct {
	Data *reports.ExpenseChart `json:"data"` // Data for the expense chart
}

// @Summary		Monthly total
// @Description	Returns the spending total of a month with the variation against the previous month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyTotalResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	query		string	true	"ID of the account"
// @Param			month	query		string	false	"The month in YYYY-MM format, defaults to the current month"
// @Router			/v1/reports/monthly-total [get]
func (ctrl ReportController) GetMonthlyTotal(c *gin.Context) {
	accountID, month, err := httputil.ParseAccountMonth(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	total, err := ctrl.Service.MonthlyTotal(accountID, month)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, MonthlyTotalResponse{Data: &total})
}

// @Summary		Available balance
// @Description	Returns the remaining budget of a month with its status classification
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	AvailableBalanceResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	query		string	true	"ID of the account"
// @Param			month	query		string	false	"The month in YYYY-MM format, defaults to the current month"
// @Router			/v1/reports/available-balance [get]
func (ctrl ReportController) GetAvailableBalance(c *gin.Context) {
	accountID, month, err := httputil.ParseAccountMonth(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	balance, err := ctrl.Service.AvailableBalance(accountID, month)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, AvailableBalanceResponse{Data: &balance})
}

// @Summary		Expense chart
// @Description	Returns the spending of a month grouped by category, limited to the largest groups
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ExpenseChartResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	query		string	true	"ID of the account"
// @Param			month	query		string	false	"The month in YYYY-MM format, defaults to the current month"
// @Router			/v1/reports/expense-chart [get]
func (ctrl ReportController) GetExpenseChart(c *gin.Context) {
	accountID, month, err := httputil.ParseAccountMonth(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	chart, err := ctrl.Service.ExpenseChart(accountID, month)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ExpenseChartResponse{Data: &chart})
}
