package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Expense{}, "id = ?", id).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	expense := editable.model()
	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns the expenses of an account, most recent first
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			account		query		string	true	"ID of the account"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			month		query		string	false	"Filter by month in YYYY-MM format"
// @Param			match		query		string	false	"Filter by description glob, e.g. *lunch*"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	accountID, err := httputil.ParseAccount(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	month, err := httputil.ParseMonth(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var expenses []models.Expense
	if value := c.Query("category"); value != "" {
		categoryID, err := uuid.Parse(value)
		if err != nil {
			c.JSON(httperror.Status(httputil.ErrInvalidUUID), httperror.New(httputil.ErrInvalidUUID))
			return
		}

		expenses, err = models.ExpensesByCategory(models.DB, accountID, categoryID)
		if err != nil {
			c.JSON(httperror.Status(err), httperror.New(err))
			return
		}
	} else {
		expenses, err = models.ExpensesByAccount(models.DB, accountID)
		if err != nil {
			c.JSON(httperror.Status(err), httperror.New(err))
			return
		}
	}

	match := c.Query("match")

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if !month.IsZero() && !month.Contains(expense.Date) {
			continue
		}

		if match != "" && !glob.Glob(match, expense.Description) {
			continue
		}

		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific expense of an account
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		string	true	"ID of the expense"
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	accountID, err := httputil.ParseAccount(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	expense, err := models.ExpenseByID(models.DB, accountID, id)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}
