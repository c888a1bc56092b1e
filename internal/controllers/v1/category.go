package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Seeding of the predefined categories
	{
		r.OPTIONS("/predefined", OptionsCategoryPredefined)
		r.POST("/predefined", CreatePredefinedCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}

	// Restore of edited predefined categories
	{
		r.OPTIONS("/:id/restore", OptionsCategoryRestore)
		r.POST("/:id/restore", RestoreCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/predefined [options]
func OptionsCategoryPredefined(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Category{}, "id = ?", id).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/categories/{id}/restore [options]
func OptionsCategoryRestore(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create category
// @Description	Creates a new custom category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	category := editable.model()
	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Seed predefined categories
// @Description	Creates the predefined categories for an account. Already existing names are skipped.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryListResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	body		CategorySeed	true	"Account"
// @Router			/v1/categories/predefined [post]
func CreatePredefinedCategories(c *gin.Context) {
	var seed CategorySeed

	err := httputil.BindData(c, &seed)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	categories, err := models.CreatePredefinedCategories(models.DB, seed.AccountID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusCreated, CategoryListResponse{Data: data})
}

// @Summary		Get categories
// @Description	Returns the categories of an account, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	accountID, err := httputil.ParseAccount(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	categories, err := models.CategoriesByAccount(models.DB, accountID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category of an account
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		string	true	"ID of the category"
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := categoryFromRequest(c)
	if !ok {
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates name, icon or color of a category. Only values to be updated need to be specified. Updating a predefined category marks it as edited.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		string			true	"ID of the category"
// @Param			account		query		string			true	"ID of the account"
// @Param			category	body		CategoryUpdate	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, ok := categoryFromRequest(c)
	if !ok {
		return
	}

	var update CategoryUpdate
	err := httputil.BindData(c, &update)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	name, icon, color := category.Name, category.Icon, category.Color
	if update.Name != nil {
		name = *update.Name
	}
	if update.Icon != nil {
		icon = *update.Icon
	}
	if update.Color != nil {
		color = *update.Color
	}

	err = models.UpdateCategory(models.DB, &category, name, icon, color)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a custom category. If the category still has expenses, they are reassigned to the substitute category.
// @Tags			Categories
// @Success		204
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path	string	true	"ID of the category"
// @Param			account		query	string	true	"ID of the account"
// @Param			substitute	query	string	false	"ID of the category that takes over the expenses"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, ok := categoryFromRequest(c)
	if !ok {
		return
	}

	var substitute *uuid.UUID
	if value := c.Query("substitute"); value != "" {
		parsed, err := uuid.Parse(value)
		if err != nil {
			c.JSON(httperror.Status(httputil.ErrInvalidUUID), httperror.New(httputil.ErrInvalidUUID))
			return
		}
		substitute = &parsed
	}

	err := models.DeleteCategory(models.DB, category, substitute)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Restore category
// @Description	Restores an edited predefined category to its fixed defaults
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		string	true	"ID of the category"
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/categories/{id}/restore [post]
func RestoreCategory(c *gin.Context) {
	category, ok := categoryFromRequest(c)
	if !ok {
		return
	}

	err := models.RestoreCategory(models.DB, &category)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// categoryFromRequest loads the category that the account and id of the
// request refer to. On failure, the error response has already been written.
func categoryFromRequest(c *gin.Context) (models.Category, bool) {
	accountID, err := httputil.ParseAccount(c)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return models.Category{}, false
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return models.Category{}, false
	}

	category, err := models.CategoryByID(models.DB, accountID, id)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return models.Category{}, false
	}

	return category, true
}
