package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetAmountNegative() {
	err := models.DB.Create(&models.Budget{
		AccountID: uuid.New(),
		Amount:    decimal.NewFromInt(-100),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrBudgetAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetAmountNoBudget() {
	amount, err := models.BudgetAmount(models.DB, uuid.New())
	suite.Require().Nil(err)
	suite.Assert().True(amount.IsZero())
}

func (suite *TestSuiteStandard) TestSetBudget() {
	accountID := uuid.New()

	budget, err := models.SetBudget(models.DB, accountID, decimal.NewFromInt(2000))
	suite.Require().Nil(err)
	suite.Assert().True(budget.Amount.Equal(decimal.NewFromInt(2000)))

	// Setting the budget again replaces the amount, no second budget is created
	replaced, err := models.SetBudget(models.DB, accountID, decimal.NewFromInt(2500))
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.ID, replaced.ID)

	amount, err := models.BudgetAmount(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Assert().True(amount.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestBudgetByAccountNotFound() {
	_, err := models.BudgetByAccount(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
