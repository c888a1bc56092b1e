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

func (suite *TestSuiteStandard) TestOptionsCategory() {
	suite.checkOptions("/v1/categories", "GET, POST")
	suite.checkOptions("/v1/categories/predefined", "POST")

	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})
	suite.checkOptions(fmt.Sprintf("/v1/categories/%s", category.ID), "GET, PATCH, DELETE")
	suite.checkOptions(fmt.Sprintf("/v1/categories/%s/restore", category.ID), "POST")
}

func (suite *TestSuiteStandard) TestOptionsCategoryNotFound() {
	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/categories/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		AccountID: uuid.New(),
		Name:      "Pets",
		Icon:      "paw",
		Color:     "#FF9800",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Pets", response.Data.Name)
	suite.Assert().Equal(models.CategoryKindCustom, response.Data.Kind)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/categories/%s", test.BaseURL, response.Data.ID), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalidName() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		AccountID: uuid.New(),
		Name:      "No",
		Icon:      "paw",
		Color:     "#FF9800",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrCategoryNameInvalid.Error(), response.Error)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	accountID := uuid.New()
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		AccountID: accountID,
		Name:      "  PETS ",
		Icon:      "paw",
		Color:     "#FF9800",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreatePredefinedCategories() {
	accountID := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories/predefined", v1.CategorySeed{AccountID: accountID})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 8)

	// Seeding twice does not create duplicates
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories/predefined", v1.CategorySeed{AccountID: accountID})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	accountID := uuid.New()
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Books"})
	_ = suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Other account"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories?account=%s", accountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Books", response.Data[0].Name)
	suite.Assert().Equal("Pets", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestGetCategoriesWithoutAccount() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategory() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	recorder := test.Request(suite.T(), http.MethodGet, categoryPath(category.ID, category.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Pets", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetCategoryNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, categoryPath(uuid.New(), uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetCategoryInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/definitely-not-a-uuid?account=%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets", Icon: "paw"})

	recorder := test.Request(suite.T(), http.MethodPatch, categoryPath(category.ID, category.AccountID), map[string]string{
		"name": "Animals",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Animals", response.Data.Name)

	// Fields not in the request are unchanged
	suite.Assert().Equal("paw", response.Data.Icon)
}

func (suite *TestSuiteStandard) TestUpdatePredefinedCategoryMarksEdited() {
	accountID := uuid.New()
	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	recorder := test.Request(suite.T(), http.MethodPatch, categoryPath(created[0].ID, accountID), map[string]string{
		"name": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Edited)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	recorder := test.Request(suite.T(), http.MethodDelete, categoryPath(category.ID, category.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, categoryPath(category.ID, category.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithSubstitute() {
	accountID := uuid.New()
	category := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
	substitute := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Plants"})

	expense := suite.createTestExpense(models.Expense{
		AccountID:  accountID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(10),
	})

	// Without a substitute, deletion is rejected
	recorder := test.Request(suite.T(), http.MethodDelete, categoryPath(category.ID, accountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s&substitute=%s", categoryPath(category.ID, accountID), substitute.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	reassigned, err := models.ExpenseByID(models.DB, accountID, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(substitute.ID, reassigned.CategoryID)
}

func (suite *TestSuiteStandard) TestDeletePredefinedCategory() {
	accountID := uuid.New()
	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	recorder := test.Request(suite.T(), http.MethodDelete, categoryPath(created[0].ID, accountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRestoreCategory() {
	accountID := uuid.New()
	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	category := created[0]
	err = models.UpdateCategory(models.DB, &category, "Groceries", "cart", "#AABBCC")
	suite.Require().Nil(err)

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/categories/%s/restore?account=%s", category.ID, accountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Food", response.Data.Name)
	suite.Assert().Equal("utensils", response.Data.Icon)
	suite.Assert().False(response.Data.Edited)
}

func (suite *TestSuiteStandard) TestRestoreCustomCategory() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/categories/%s/restore?account=%s", category.ID, category.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
