package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	suite.checkOptions("/v1/budget", "GET, PUT")
}

func (suite *TestSuiteStandard) TestGetBudgetUndefined() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budget?account=%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Amount.IsZero())
	suite.Assert().False(response.Data.Defined)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	accountID := uuid.New()
	_ = suite.createTestBudget(accountID, decimal.NewFromInt(2000))

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budget?account=%s", accountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.Defined)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	accountID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPut, "/v1/budget", v1.BudgetEditable{
		AccountID: accountID,
		Amount:    decimal.NewFromInt(2000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Setting it again replaces the amount
	recorder = test.Request(suite.T(), http.MethodPut, "/v1/budget", v1.BudgetEditable{
		AccountID: accountID,
		Amount:    decimal.NewFromInt(2500),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(2500)))

	amount, err := models.BudgetAmount(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Assert().True(amount.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestSetBudgetNegative() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/budget", v1.BudgetEditable{
		AccountID: uuid.New(),
		Amount:    decimal.NewFromInt(-100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetWithoutAccount() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
