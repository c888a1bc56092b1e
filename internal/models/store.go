package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store adapts the database to the data source interfaces the reports
// package consumes. A different storage backend can be substituted without
// touching any aggregation logic.
type Store struct {
	DB *gorm.DB
}

func (s Store) ExpensesByAccount(accountID uuid.UUID) ([]Expense, error) {
	return ExpensesByAccount(s.DB, accountID)
}

func (s Store) CategoriesByAccount(accountID uuid.UUID) ([]Category, error) {
	return CategoriesByAccount(s.DB, accountID)
}

func (s Store) BudgetAmount(accountID uuid.UUID) (decimal.Decimal, error) {
	return BudgetAmount(s.DB, accountID)
}
