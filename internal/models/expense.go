package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxDescriptionLength is the limit for expense descriptions.
const maxDescriptionLength = 100

// Expense represents a single expense of an account.
type Expense struct {
	DefaultModel
	AccountID   uuid.UUID       `json:"accountId" gorm:"index"`                    // ID of the account the expense belongs to
	UserID      uuid.UUID       `json:"userId"`                                    // ID of the user who created the expense
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"index"`                   // ID of the category the expense is assigned to
	Category    Category        `json:"-"`                                         // The category the expense is assigned to
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`          // Amount of the expense, always positive
	Date        time.Time       `json:"date" example:"2026-08-02T00:00:00Z"`       // Date of the expense
	Description string          `json:"description" example:"Lunch with the team"` // Optional description
}

// BeforeSave validates the expense and sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if len(e.Description) > maxDescriptionLength {
		return ErrExpenseDescriptionTooLong
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// BeforeCreate verifies that the category the expense is assigned to exists
// for the account.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	return tx.Where("account_id = ?", e.AccountID).First(&Category{}, "id = ?", e.CategoryID).Error
}

// AfterFind updates the date to use UTC as timezone, not +0000.
// See DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// ExpensesByAccount returns all non-deleted expenses of the account.
func ExpensesByAccount(db *gorm.DB, accountID uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := db.Where("account_id = ?", accountID).Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpensesByCategory returns all non-deleted expenses of the account that
// are assigned to the category.
func ExpensesByCategory(db *gorm.DB, accountID, categoryID uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := db.Where("account_id = ? AND category_id = ?", accountID, categoryID).Order("date DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpenseByID returns the non-deleted expense with the ID for the account.
func ExpenseByID(db *gorm.DB, accountID, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := db.Where("account_id = ?", accountID).First(&expense, "id = ?", id).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// ReassignExpenses moves all expenses of the account from one category to
// another in a single bulk update, setting the modification timestamp.
func ReassignExpenses(db *gorm.DB, accountID, fromCategoryID, toCategoryID uuid.UUID) error {
	return db.Model(&Expense{}).
		Where("account_id = ? AND category_id = ?", accountID, fromCategoryID).
		Update("category_id", toCategoryID).Error
}
