package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	AccountID   uuid.UUID       `json:"accountId" binding:"required" example:"7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"`  // ID of the account the expense belongs to
	UserID      uuid.UUID       `json:"userId" binding:"required" example:"d3cbf0e4-98c1-4d46-43af-7ab6b4b41bb2"`     // ID of the user creating the expense
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the expense is assigned to
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"14.5"`                                     // Amount of the expense
	Date        time.Time       `json:"date" example:"2026-08-02T00:00:00Z"`                                          // Date of the expense, defaults to now
	Description string          `json:"description" example:"Lunch with the team"`                                    // Optional description, at most 100 characters
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		AccountID:   editable.AccountID,
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"`                                                 // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f?account=7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"` // The category the expense is assigned to
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(httputil.ContextURL)

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s?account=%s", url, model.CategoryID, model.AccountID),
		},
	}
}

type ExpenseResponse struct {
	Data *Expense `json:"data"` // Data for the expense
}

type ExpenseListResponse struct {
	Data []Expense `json:"data"` // List of expenses
}
