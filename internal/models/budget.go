package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the monthly budget of an account. Each account has at most one
// active budget; an account without a budget is treated as "budget
// undefined" by all calculations.
type Budget struct {
	DefaultModel
	AccountID uuid.UUID       `json:"accountId" gorm:"uniqueIndex"`     // ID of the account the budget belongs to
	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"` // The monthly budget amount
}

// BeforeSave validates the budget amount.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// BudgetByAccount returns the budget of the account.
func BudgetByAccount(db *gorm.DB, accountID uuid.UUID) (Budget, error) {
	var budget Budget
	err := db.First(&budget, "account_id = ?", accountID).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// BudgetAmount returns the monthly budget amount of the account. Accounts
// without a budget get a zero amount, the distinction between "zero" and
// "undefined" is made downstream.
func BudgetAmount(db *gorm.DB, accountID uuid.UUID) (decimal.Decimal, error) {
	budget, err := BudgetByAccount(db, accountID)
	if errors.Is(err, ErrResourceNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return budget.Amount, nil
}

// SetBudget creates or replaces the budget of the account.
func SetBudget(db *gorm.DB, accountID uuid.UUID, amount decimal.Decimal) (Budget, error) {
	budget, err := BudgetByAccount(db, accountID)
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	if errors.Is(err, ErrResourceNotFound) {
		budget = Budget{AccountID: accountID, Amount: amount}
		err = db.Create(&budget).Error
		return budget, err
	}

	budget.Amount = amount
	err = db.Save(&budget).Error
	return budget, err
}
