package models

import (
	"errors"
)

// General errors. ErrResourceNotFound is extended with the resource name
// by the query callback in database.go.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors. All of them are business rule violations that are
// surfaced to the caller as-is.
var (
	ErrCategoryNameInvalid        = errors.New("category names must be 3 to 30 characters long and can only contain letters, digits, spaces and hyphens")
	ErrCategoryNameDuplicate      = errors.New("a category with this name already exists for the account")
	ErrCategoryColorInvalid       = errors.New("category colors must be a '#' followed by six hex digits")
	ErrCategoryLimitReached       = errors.New("the limit of 15 custom categories for the account is reached")
	ErrCategoryPredefined         = errors.New("predefined categories cannot be deleted")
	ErrCategorySubstituteRequired = errors.New("a substitute category must be specified to delete a category that has expenses")
	ErrCategorySubstituteInvalid  = errors.New("the substitute category must be a different, existing category of the same account")
	ErrCategoryNotRestorable      = errors.New("only predefined categories that have been edited can be restored")
)

// Expense errors.
var (
	ErrExpenseAmountNotPositive  = errors.New("expense amounts must be larger than zero")
	ErrExpenseDescriptionTooLong = errors.New("expense descriptions are limited to 100 characters")
)

// Budget errors.
var (
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")
)
