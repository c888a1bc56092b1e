// Package reports computes the derived monthly views over expenses,
// categories and budgets: monthly totals with period comparison, the
// available balance and the category distribution chart.
//
// All computations are pure reads. Missing data (no budget, no previous
// month expenses) is a valid, displayable state and never an error.
package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// ExpenseSource provides the non-deleted expenses of an account.
type ExpenseSource interface {
	ExpensesByAccount(accountID uuid.UUID) ([]models.Expense, error)
}

// CategorySource provides the non-deleted categories of an account,
// ordered by name ascending.
type CategorySource interface {
	CategoriesByAccount(accountID uuid.UUID) ([]models.Category, error)
}

// BudgetSource provides the monthly budget amount of an account.
// An account without a budget gets a zero amount.
type BudgetSource interface {
	BudgetAmount(accountID uuid.UUID) (decimal.Decimal, error)
}

// Color is a visual indicator color used by the UI.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// Service computes reports over the injected data sources. The clock is
// injected so that "current month" is deterministic in tests.
type Service struct {
	expenses   ExpenseSource
	categories CategorySource
	budgets    BudgetSource
	now        func() time.Time
}

// NewService returns a Service reading from the passed sources. If now is
// nil, time.Now is used.
func NewService(expenses ExpenseSource, categories CategorySource, budgets BudgetSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		expenses:   expenses,
		categories: categories,
		budgets:    budgets,
		now:        now,
	}
}

var hundred = decimal.NewFromInt(100)
