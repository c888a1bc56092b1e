package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// chartLimit is the number of categories shown individually. Everything
// beyond is collapsed into the "Others" entry.
const chartLimit = 10

// Fixed identity of the synthetic "Others" chart entry. The nil UUID
// distinguishes it from real categories.
var (
	OthersCategoryID = uuid.Nil
	othersName       = "Others"
	othersIcon       = "dots"
	othersColor      = "#9E9E9E"
)

// ChartEntry is one slice of the category distribution chart.
type ChartEntry struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"5b0e0b91-cbb7-4fc3-a6e7-81d6b3b1a3f5"` // ID of the category, the nil UUID for the Others entry
	Name       string          `json:"name" example:"Groceries"`                                   // Name of the category
	Icon       string          `json:"icon" example:"bag"`                                         // Icon of the category
	Color      string          `json:"color" example:"#4CAF50"`                                    // Color of the category
	Amount     decimal.Decimal `json:"amount" example:"431.2"`                                     // Summed amount, rounded to 2 decimal places
	Percentage decimal.Decimal `json:"percentage" example:"32.9"`                                  // Share of the total, rounded to 1 decimal place
	IsOthers   bool            `json:"isOthers" example:"false"`                                   // Is this the synthetic Others entry?
}

// ExpenseChart is the category distribution of a month's expenses. The
// entries partition the total: their percentages always sum to exactly 100
// when the total is larger than zero.
type ExpenseChart struct {
	Month       types.Month     `json:"month" example:"2026-08"`                     // The month the calculation was made for
	Period      string          `json:"period" example:"08/2026"`                    // Period key in MM/YYYY format
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1312.5"`                // Total over all categories, rounded to 2 decimal places
	Categories  []ChartEntry    `json:"categories"`                                  // Ordered entries, at most 11 (top 10 plus Others)
	Timestamp   time.Time       `json:"timestamp" example:"2026-08-29T12:00:00.000Z"` // Time the chart was generated
}

// ExpenseChart groups the month's expenses by category. A zero month means
// the current month of the service clock.
func (s *Service) ExpenseChart(accountID uuid.UUID, month types.Month) (ExpenseChart, error) {
	if month.IsZero() {
		month = types.MonthOf(s.now())
	}

	expenses, err := s.expenses.ExpensesByAccount(accountID)
	if err != nil {
		return ExpenseChart{}, err
	}

	categories, err := s.categories.CategoriesByAccount(accountID)
	if err != nil {
		return ExpenseChart{}, err
	}

	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, expense := range expenses {
		if !month.Contains(expense.Date) {
			continue
		}
		if _, ok := byID[expense.CategoryID]; !ok {
			continue
		}

		sums[expense.CategoryID] = sums[expense.CategoryID].Add(expense.Amount)
	}

	// Build the groups in category list order (name ascending), then sort
	// stably by amount descending. Ties keep the name order, which makes
	// the result deterministic.
	var groups []ChartEntry
	var total decimal.Decimal
	for _, category := range categories {
		amount, ok := sums[category.ID]
		if !ok {
			continue
		}

		total = total.Add(amount)
		groups = append(groups, ChartEntry{
			CategoryID: category.ID,
			Name:       category.Name,
			Icon:       category.Icon,
			Color:      category.Color,
			Amount:     amount,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.GreaterThan(groups[j].Amount)
	})

	entries := groups
	if len(groups) > chartLimit {
		entries = groups[:chartLimit]

		var othersAmount decimal.Decimal
		for _, group := range groups[chartLimit:] {
			othersAmount = othersAmount.Add(group.Amount)
		}

		entries = append(entries, ChartEntry{
			CategoryID: OthersCategoryID,
			Name:       othersName,
			Icon:       othersIcon,
			Color:      othersColor,
			Amount:     othersAmount,
			IsOthers:   true,
		})
	}

	for i := range entries {
		if total.IsPositive() {
			entries[i].Percentage = entries[i].Amount.Div(total).Mul(hundred).Round(1)
		}
		entries[i].Amount = entries[i].Amount.Round(2)
	}

	// Independent rounding can leave the percentages slightly off 100.
	// The full residual goes to the first entry so that the displayed
	// slices always sum to exactly 100.
	if len(entries) > 0 && total.IsPositive() {
		var sum decimal.Decimal
		for _, entry := range entries {
			sum = sum.Add(entry.Percentage)
		}

		residual := hundred.Sub(sum)
		if residual.Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
			entries[0].Percentage = entries[0].Percentage.Add(residual).Round(1)
		}
	}

	if entries == nil {
		entries = []ChartEntry{}
	}

	return ExpenseChart{
		Month:       month,
		Period:      month.Key(),
		TotalAmount: total.Round(2),
		Categories:  entries,
		Timestamp:   s.now().In(time.UTC),
	}, nil
}
