package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
)

// Display strings for states where no numeric value exists.
const (
	noComparisonData = "no comparison data available"
	noBudgetDefined  = "no budget defined"
)

// MonthlyTotal is the expense total of a month with the comparison against
// the previous month and the budget indicator.
type MonthlyTotal struct {
	Month            types.Month      `json:"month" example:"2026-08"`                  // The month the calculation was made for
	MonthKey         string           `json:"monthKey" example:"08/2026"`               // Period key in MM/YYYY format
	MonthDisplay     string           `json:"monthDisplay" example:"August 2026"`       // Month name and year for display
	TotalCurrent     decimal.Decimal  `json:"totalCurrentMonth" example:"1312.5"`       // Sum of the month's expenses, rounded to 2 decimal places
	TotalPrevious    decimal.Decimal  `json:"totalPreviousMonth" example:"875"`         // Sum of the previous month's expenses, rounded to 2 decimal places
	Variation        *decimal.Decimal `json:"percentageVariation" example:"50"`         // Percentage variation against the previous month, unset if there is no comparison data
	VariationDisplay string           `json:"percentageVariationDisplay" example:"50%"` // Formatted variation or a "no data" message
	Indicator        Color            `json:"visualIndicator" example:"green"`          // Budget indicator color
	BudgetAmount     *decimal.Decimal `json:"budgetAmount" example:"2000"`              // The monthly budget, unset if undefined
	BudgetPct        *decimal.Decimal `json:"budgetPercentage" example:"65.6"`          // Percentage of the budget used, unset if the budget is undefined
	BudgetPctDisplay string           `json:"budgetPercentageDisplay" example:"65.6%"`  // Formatted budget percentage or a "no budget" message
}

// MonthlyTotal computes the expense total for the month. A zero month means
// the current month of the service clock.
func (s *Service) MonthlyTotal(accountID uuid.UUID, month types.Month) (MonthlyTotal, error) {
	if month.IsZero() {
		month = types.MonthOf(s.now())
	}
	previous := month.Previous()

	expenses, err := s.expenses.ExpensesByAccount(accountID)
	if err != nil {
		return MonthlyTotal{}, err
	}

	var current, prior decimal.Decimal
	for _, expense := range expenses {
		switch {
		case month.Contains(expense.Date):
			current = current.Add(expense.Amount)
		case previous.Contains(expense.Date):
			prior = prior.Add(expense.Amount)
		}
	}
	current = current.Round(2)
	prior = prior.Round(2)

	result := MonthlyTotal{
		Month:         month,
		MonthKey:      month.Key(),
		MonthDisplay:  month.Display(),
		TotalCurrent:  current,
		TotalPrevious: prior,
	}

	// A previous month without expenses means there is nothing to compare
	// against. This is not the same as a variation of 100% or infinity, so
	// the variation stays unset.
	if prior.IsZero() {
		result.VariationDisplay = noComparisonData
	} else {
		variation := current.Sub(prior).Div(prior).Mul(hundred)
		result.Variation = &variation
		result.VariationDisplay = variation.StringFixed(1) + "%"
	}

	budget, err := s.budgets.BudgetAmount(accountID)
	if err != nil {
		return MonthlyTotal{}, err
	}

	if budget.IsZero() {
		result.Indicator = ColorGray
		result.BudgetPctDisplay = noBudgetDefined
		return result, nil
	}

	pct := current.Div(budget).Mul(hundred)
	result.BudgetAmount = &budget
	result.BudgetPct = &pct
	result.BudgetPctDisplay = pct.StringFixed(1) + "%"

	switch {
	case pct.LessThanOrEqual(decimal.NewFromInt(80)):
		result.Indicator = ColorGreen
	case pct.LessThanOrEqual(hundred):
		result.Indicator = ColorYellow
	default:
		result.Indicator = ColorRed
	}

	return result, nil
}
