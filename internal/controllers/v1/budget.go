package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for the budget with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
	r.PUT("", SetBudget)
}

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	AccountID uuid.UUID       `json:"accountId" binding:"required" example:"7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"` // ID of the account the budget belongs to
	Amount    decimal.Decimal `json:"amount" example:"2000"`                                                       // The monthly budget amount
}

type BudgetData struct {
	AccountID uuid.UUID       `json:"accountId" example:"7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"` // ID of the account
	Amount    decimal.Decimal `json:"amount" example:"2000"`                                     // The monthly budget amount, 0 if undefined
	Defined   bool            `json:"defined" example:"true"`                                    // Is a budget defined for the account?
}

type BudgetResponse struct {
	Data *BudgetData `json:"data"` // Data for the budget
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budget
// @Description	Returns the monthly budget of an account. Accounts without a budget get a zero amount and defined=false.
// @Tags			Budget
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	accountID, err := httputil.ParseAccount(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	amount, err := models.BudgetAmount(models.DB, accountID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &BudgetData{
		AccountID: accountID,
		Amount:    amount,
		Defined:   amount.IsPositive(),
	}})
}

// @Summary		Set budget
// @Description	Creates or replaces the monthly budget of an account
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [put]
func SetBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	budget, err := models.SetBudget(models.DB, editable.AccountID, editable.Amount)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &BudgetData{
		AccountID: budget.AccountID,
		Amount:    budget.Amount,
		Defined:   budget.Amount.IsPositive(),
	}})
}
