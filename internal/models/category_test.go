package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimmedName() {
	category := suite.createTestCategory(models.Category{
		AccountID: uuid.New(),
		Name:      "  Pets  ",
	})

	suite.Assert().Equal("Pets", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameInvalid() {
	tests := []string{
		"",
		"ab",
		"This name is far too long to be accepted as a category name",
		"Nöpe",
		"No!",
	}

	for _, name := range tests {
		err := models.DB.Create(&models.Category{
			AccountID: uuid.New(),
			Name:      name,
			Color:     "#123ABC",
			Kind:      models.CategoryKindCustom,
		}).Error

		suite.Assert().ErrorIs(err, models.ErrCategoryNameInvalid, "Name %q did not return the correct error", name)
	}
}

func (suite *TestSuiteStandard) TestCategoryColorInvalid() {
	err := models.DB.Create(&models.Category{
		AccountID: uuid.New(),
		Name:      "Pets",
		Color:     "red",
		Kind:      models.CategoryKindCustom,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryColorInvalid)
}

func (suite *TestSuiteStandard) TestCategoryNameDuplicate() {
	accountID := uuid.New()
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})

	err := models.DB.Create(&models.Category{
		AccountID: accountID,
		Name:      "  pets  ",
		Color:     "#123ABC",
		Kind:      models.CategoryKindCustom,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryNameDuplicate)
}

func (suite *TestSuiteStandard) TestCategoryNameDuplicateOtherAccount() {
	_ = suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	// The same name is fine for another account
	_ = suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})
}

func (suite *TestSuiteStandard) TestCategoryCustomLimit() {
	accountID := uuid.New()

	for i := 0; i < 15; i++ {
		_ = suite.createTestCategory(models.Category{
			AccountID: accountID,
			Name:      uuid.New().String()[:8],
		})
	}

	err := models.DB.Create(&models.Category{
		AccountID: accountID,
		Name:      "One too many",
		Color:     "#123ABC",
		Kind:      models.CategoryKindCustom,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryLimitReached)
}

func (suite *TestSuiteStandard) TestCategoryCustomLimitIgnoresPredefined() {
	accountID := uuid.New()

	_, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	for i := 0; i < 15; i++ {
		_ = suite.createTestCategory(models.Category{
			AccountID: accountID,
			Name:      uuid.New().String()[:8],
		})
	}
}

func (suite *TestSuiteStandard) TestCreatePredefinedCategories() {
	accountID := uuid.New()

	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Assert().Len(created, 8)

	for _, category := range created {
		suite.Assert().Equal(models.CategoryKindPredefined, category.Kind)
		suite.Assert().False(category.Edited)
		suite.Require().NotNil(category.OriginalName)
		suite.Assert().Equal(category.Name, *category.OriginalName)
	}

	// Seeding again does not create duplicates
	created, err = models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Assert().Len(created, 0)

	categories, err := models.CategoriesByAccount(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 8)
}

func (suite *TestSuiteStandard) TestCategoriesByAccountSorted() {
	accountID := uuid.New()

	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "cherry"})
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Apple"})
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "banana"})

	categories, err := models.CategoriesByAccount(models.DB, accountID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 3)

	suite.Assert().Equal("Apple", categories[0].Name)
	suite.Assert().Equal("banana", categories[1].Name)
	suite.Assert().Equal("cherry", categories[2].Name)
}

func (suite *TestSuiteStandard) TestCategoryByIDNotFound() {
	_, err := models.CategoryByID(models.DB, uuid.New(), uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	err := models.UpdateCategory(models.DB, &category, "Animals", "paw", "#AABBCC")
	suite.Require().Nil(err)

	updated, err := models.CategoryByID(models.DB, category.AccountID, category.ID)
	suite.Require().Nil(err)

	suite.Assert().Equal("Animals", updated.Name)
	suite.Assert().Equal("paw", updated.Icon)
	suite.Assert().Equal("#AABBCC", updated.Color)
	suite.Assert().False(updated.Edited)
}

func (suite *TestSuiteStandard) TestUpdateCategoryMarksPredefinedEdited() {
	accountID := uuid.New()

	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	category := created[0]
	err = models.UpdateCategory(models.DB, &category, "Groceries", category.Icon, category.Color)
	suite.Require().Nil(err)

	suite.Assert().True(category.Edited)
	suite.Require().NotNil(category.OriginalName)
	suite.Assert().Equal("Food", *category.OriginalName)
}

func (suite *TestSuiteStandard) TestUpdateCategoryDuplicate() {
	accountID := uuid.New()
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
	category := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Plants"})

	err := models.UpdateCategory(models.DB, &category, "pets", category.Icon, category.Color)
	suite.Assert().ErrorIs(err, models.ErrCategoryNameDuplicate)
}

func (suite *TestSuiteStandard) TestUpdateCategoryCaseOnly() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	// Changing only the casing of a name does not conflict with itself
	err := models.UpdateCategory(models.DB, &category, "PETS", category.Icon, category.Color)
	suite.Require().Nil(err)
	suite.Assert().Equal("PETS", category.Name)
}

func (suite *TestSuiteStandard) TestDeleteCategoryPredefined() {
	accountID := uuid.New()

	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	err = models.DeleteCategory(models.DB, created[0], nil)
	suite.Assert().ErrorIs(err, models.ErrCategoryPredefined)
}

func (suite *TestSuiteStandard) TestDeleteCategoryNoExpenses() {
	category := suite.createTestCategory(models.Category{AccountID: uuid.New(), Name: "Pets"})

	err := models.DeleteCategory(models.DB, category, nil)
	suite.Require().Nil(err)

	_, err = models.CategoryByID(models.DB, category.AccountID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithExpenses() {
	accountID := uuid.New()
	category := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
	substitute := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Plants"})

	expense := suite.createTestExpense(models.Expense{
		AccountID:  accountID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(10),
	})

	// Without a substitute the category cannot be deleted
	err := models.DeleteCategory(models.DB, category, nil)
	suite.Assert().ErrorIs(err, models.ErrCategorySubstituteRequired)

	// The category itself is not a valid substitute
	err = models.DeleteCategory(models.DB, category, &category.ID)
	suite.Assert().ErrorIs(err, models.ErrCategorySubstituteInvalid)

	// Neither is a category that does not exist
	unknown := uuid.New()
	err = models.DeleteCategory(models.DB, category, &unknown)
	suite.Assert().ErrorIs(err, models.ErrCategorySubstituteInvalid)

	err = models.DeleteCategory(models.DB, category, &substitute.ID)
	suite.Require().Nil(err)

	reassigned, err := models.ExpenseByID(models.DB, accountID, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(substitute.ID, reassigned.CategoryID)

	_, err = models.CategoryByID(models.DB, accountID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeletedCategoryFreesName() {
	accountID := uuid.New()
	category := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})

	err := models.DeleteCategory(models.DB, category, nil)
	suite.Require().Nil(err)

	// The name of a deleted category can be reused
	_ = suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
}

func (suite *TestSuiteStandard) TestRestoreCategory() {
	accountID := uuid.New()

	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	category := created[0]
	err = models.UpdateCategory(models.DB, &category, "Groceries", "cart", "#AABBCC")
	suite.Require().Nil(err)
	suite.Require().True(category.Edited)

	err = models.RestoreCategory(models.DB, &category)
	suite.Require().Nil(err)

	suite.Assert().Equal("Food", category.Name)
	suite.Assert().Equal("utensils", category.Icon)
	suite.Assert().Equal("#4CAF50", category.Color)
	suite.Assert().False(category.Edited)
}

func (suite *TestSuiteStandard) TestRestoreCategoryNotRestorable() {
	accountID := uuid.New()

	custom := suite.createTestCategory(models.Category{AccountID: accountID, Name: "Pets"})
	err := models.RestoreCategory(models.DB, &custom)
	suite.Assert().ErrorIs(err, models.ErrCategoryNotRestorable)

	created, err := models.CreatePredefinedCategories(models.DB, accountID)
	suite.Require().Nil(err)

	// An unedited predefined category has nothing to restore
	err = models.RestoreCategory(models.DB, &created[0])
	suite.Assert().ErrorIs(err, models.ErrCategoryNotRestorable)
}
