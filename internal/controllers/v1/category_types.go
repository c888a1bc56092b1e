package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	AccountID uuid.UUID `json:"accountId" binding:"required" example:"7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"` // ID of the account the category belongs to
	Name      string    `json:"name" binding:"required" example:"Pets"`                                      // Name of the category
	Icon      string    `json:"icon" binding:"required" example:"paw"`                                       // Icon identifier
	Color     string    `json:"color" binding:"required" example:"#FF9800"`                                  // Hex color code
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		AccountID: editable.AccountID,
		Name:      editable.Name,
		Icon:      editable.Icon,
		Color:     editable.Color,
		Kind:      models.CategoryKindCustom,
	}
}

// CategoryUpdate represents the updatable fields of a category. Omitted
// fields keep their current value.
type CategoryUpdate struct {
	Name  *string `json:"name" example:"Pets"`     // New name of the category
	Icon  *string `json:"icon" example:"paw"`      // New icon identifier
	Color *string `json:"color" example:"#FF9800"` // New hex color code
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                                                 // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?account=7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8&category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses assigned to this category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(httputil.ContextURL)

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?account=%s&category=%s", url, model.AccountID, model.ID),
		},
	}
}

type CategoryResponse struct {
	Data *Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of categories
}

// CategorySeed are the parameters for seeding the predefined categories of
// an account.
type CategorySeed struct {
	AccountID uuid.UUID `json:"accountId" binding:"required" example:"7e7f5b9a-cbf9-4f22-9b24-3f7dbf7e81a8"` // ID of the account to seed
}
