package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// BalanceStatus classifies the available balance of a month.
type BalanceStatus string

const (
	StatusPositive  BalanceStatus = "positive"
	StatusNegative  BalanceStatus = "negative"
	StatusWarning   BalanceStatus = "warning"
	StatusUndefined BalanceStatus = "undefined"
)

// Status messages for the UI.
const (
	messagePositive  = "balance available"
	messageNegative  = "budget exceeded"
	messageWarning   = "low balance warning"
	messageUndefined = "define a monthly budget"
)

// warningShare is the share of the budget below which the remaining
// balance triggers the warning status. The boundary is inclusive: a balance
// of exactly 10% of the budget is a warning.
var warningShare = decimal.NewFromFloat(0.10)

// progressWarning is the utilization percentage at which the progress bar
// turns yellow. This is a separate rule from warningShare: the bar warns at
// 90% utilization while the status warns at 10% of the budget remaining.
var progressWarning = decimal.NewFromInt(90)

// NoBudgetPrompt is the call to action shown when no budget is defined.
type NoBudgetPrompt struct {
	Visible bool   `json:"visible" example:"true"`                  // Only shown in the undefined status
	Message string `json:"message" example:"define a monthly budget"` // The prompt message
	Action  string `json:"action" example:"/budget"`                // Route to the budget definition
}

// AvailableBalance is the remaining budget of a month with its status
// classification and display-ready derived fields.
type AvailableBalance struct {
	Month              types.Month      `json:"month" example:"2026-08"`                   // The month the calculation was made for
	MonthKey           string           `json:"monthKey" example:"08/2026"`                // Period key in MM/YYYY format
	Budget             decimal.Decimal  `json:"budget" example:"2000"`                     // The monthly budget, 0 if undefined
	TotalExpenses      decimal.Decimal  `json:"totalExpenses" example:"1312.5"`            // Sum of the month's expenses
	Balance            decimal.Decimal  `json:"balance" example:"687.5"`                   // budget - totalExpenses
	Utilization        *decimal.Decimal `json:"utilizationPct" example:"65.6"`             // Percentage of the budget used, unset if the budget is undefined
	Status             BalanceStatus    `json:"status" example:"positive"`                 // Status classification
	StatusMessage      string           `json:"statusMessage" example:"balance available"` // Message for the status
	Color              Color            `json:"color" example:"green"`                     // Indicator color for the status
	BalanceDisplay     string           `json:"balanceDisplay" example:"$687.50"`          // Formatted balance
	UtilizationDisplay string           `json:"utilizationDisplay" example:"65.6%"`        // Formatted utilization percentage, "--" if unset
	ProgressValue      decimal.Decimal  `json:"progressValue" example:"0.656"`             // Progress bar value between 0 and 1, 0 if utilization is unset
	ProgressColor      Color            `json:"progressColor" example:"green"`             // Progress bar color
	NoBudgetPrompt     NoBudgetPrompt   `json:"noBudgetPrompt"`                            // Prompt to define a budget
}

// AvailableBalance computes the remaining balance for the month. A zero
// month means the current month of the service clock.
func (s *Service) AvailableBalance(accountID uuid.UUID, month types.Month) (AvailableBalance, error) {
	if month.IsZero() {
		month = types.MonthOf(s.now())
	}

	budget, err := s.budgets.BudgetAmount(accountID)
	if err != nil {
		return AvailableBalance{}, err
	}

	expenses, err := s.expenses.ExpensesByAccount(accountID)
	if err != nil {
		return AvailableBalance{}, err
	}

	var total decimal.Decimal
	for _, expense := range expenses {
		if month.Contains(expense.Date) {
			total = total.Add(expense.Amount)
		}
	}
	total = total.Round(2)

	balance := budget.Sub(total)

	result := AvailableBalance{
		Month:          month,
		MonthKey:       month.Key(),
		Budget:         budget,
		TotalExpenses:  total,
		Balance:        balance,
		BalanceDisplay: formatAmount(balance),
	}

	// Status classification, evaluated in this order.
	switch {
	case budget.IsZero():
		result.Status = StatusUndefined
	case balance.IsNegative():
		result.Status = StatusNegative
	case balance.LessThanOrEqual(budget.Mul(warningShare)):
		result.Status = StatusWarning
	default:
		result.Status = StatusPositive
	}

	switch result.Status {
	case StatusPositive:
		result.Color = ColorGreen
		result.StatusMessage = messagePositive
	case StatusNegative:
		result.Color = ColorRed
		result.StatusMessage = messageNegative
	case StatusWarning:
		result.Color = ColorYellow
		result.StatusMessage = messageWarning
	default:
		result.Color = ColorGray
		result.StatusMessage = messageUndefined
	}

	result.UtilizationDisplay = "--"
	if !budget.IsZero() {
		utilization := total.Div(budget).Mul(hundred)
		result.Utilization = &utilization
		result.UtilizationDisplay = utilization.StringFixed(1) + "%"
		result.ProgressValue = utilization.Div(hundred)
	}

	switch {
	case result.Utilization == nil:
		result.ProgressColor = ColorGray
	case result.Utilization.GreaterThan(hundred):
		result.ProgressColor = ColorRed
	case result.Utilization.GreaterThanOrEqual(progressWarning):
		result.ProgressColor = ColorYellow
	default:
		result.ProgressColor = ColorGreen
	}

	result.NoBudgetPrompt = NoBudgetPrompt{
		Visible: result.Status == StatusUndefined,
		Message: messageUndefined,
		Action:  "/budget",
	}

	return result, nil
}

// formatAmount renders a monetary amount with grouping and two fraction
// digits, e.g. "$1,312.50". A single display convention, not localized.
func formatAmount(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	p := message.NewPrinter(language.English)

	return p.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
