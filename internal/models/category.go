package models

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// CategoryKind distinguishes the predefined categories every account starts
// out with from the custom categories users create themselves.
type CategoryKind string

const (
	CategoryKindPredefined CategoryKind = "predefined"
	CategoryKindCustom     CategoryKind = "custom"
)

// maxCustomCategories is the number of non-deleted custom categories an
// account can have.
const maxCustomCategories = 15

// Category represents an expense category of an account.
type Category struct {
	DefaultModel
	AccountID    uuid.UUID    `json:"accountId" gorm:"index"`       // ID of the account the category belongs to
	Name         string       `json:"name" example:"Groceries"`     // Name of the category
	Icon         string       `json:"icon" example:"bag"`           // Icon identifier
	Color        string       `json:"color" example:"#4CAF50"`      // Hex color code
	Kind         CategoryKind `json:"kind" example:"custom"`        // predefined or custom
	Edited       bool         `json:"edited" example:"false"`       // Has a predefined category been edited?
	OriginalName *string      `json:"originalName" example:"Bills"` // Original name of a predefined category, used for restoring
}

var (
	categoryNamePattern  = regexp.MustCompile(`^[a-zA-Z0-9 -]{3,30}$`)
	categoryColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// BeforeSave trims whitespace from the name and validates
// the name and color.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !categoryNamePattern.MatchString(c.Name) {
		return ErrCategoryNameInvalid
	}

	if !categoryColorPattern.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}

	return nil
}

// BeforeCreate verifies that the name is still free and that the custom
// category limit is not exceeded.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	free, err := categoryNameFree(tx, c.AccountID, c.Name, c.ID)
	if err != nil {
		return err
	}
	if !free {
		return ErrCategoryNameDuplicate
	}

	if c.Kind == CategoryKindCustom {
		var count int64
		err := tx.Model(&Category{}).
			Where("account_id = ? AND kind = ?", c.AccountID, CategoryKindCustom).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count >= maxCustomCategories {
			return ErrCategoryLimitReached
		}
	}

	return nil
}

// categoryNameFree reports whether no other non-deleted category of the
// account uses the name. The comparison ignores case and surrounding
// whitespace.
func categoryNameFree(db *gorm.DB, accountID uuid.UUID, name string, selfID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&Category{}).
		Where("account_id = ? AND id != ? AND LOWER(TRIM(name)) = ?", accountID, selfID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// categoryDefault holds the fixed identity of a predefined category.
type categoryDefault struct {
	Name  string
	Icon  string
	Color string
}

// predefinedCategories is the fixed defaults table. It determines the
// categories every account is seeded with and the values an edited
// predefined category is restored to.
var predefinedCategories = []categoryDefault{
	{Name: "Food", Icon: "utensils", Color: "#4CAF50"},
	{Name: "Transport", Icon: "car", Color: "#2196F3"},
	{Name: "Leisure", Icon: "ticket", Color: "#9C27B0"},
	{Name: "Bills", Icon: "document", Color: "#F44336"},
	{Name: "Health", Icon: "cross", Color: "#E91E63"},
	{Name: "Education", Icon: "book", Color: "#FFC107"},
	{Name: "Shopping", Icon: "bag", Color: "#795548"},
	{Name: "Others", Icon: "dots", Color: "#9E9E9E"},
}

// CreatePredefinedCategories seeds the predefined categories for an account.
// Categories whose name is already taken are skipped, so seeding is safe to
// repeat.
func CreatePredefinedCategories(db *gorm.DB, accountID uuid.UUID) ([]Category, error) {
	var created []Category

	for _, def := range predefinedCategories {
		name := def.Name
		category := Category{
			AccountID:    accountID,
			Name:         def.Name,
			Icon:         def.Icon,
			Color:        def.Color,
			Kind:         CategoryKindPredefined,
			OriginalName: &name,
		}

		err := db.Create(&category).Error
		if errors.Is(err, ErrCategoryNameDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		created = append(created, category)
	}

	return created, nil
}

// CategoriesByAccount returns all non-deleted categories of the account,
// ordered by name ascending with locale-aware collation.
func CategoriesByAccount(db *gorm.DB, accountID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := db.Where("account_id = ?", accountID).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	collator := collate.New(language.English)
	sort.SliceStable(categories, func(i, j int) bool {
		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})

	return categories, nil
}

// CategoryByID returns the non-deleted category with the ID for the account.
func CategoryByID(db *gorm.DB, accountID, id uuid.UUID) (Category, error) {
	var category Category
	err := db.Where("account_id = ?", accountID).First(&category, "id = ?", id).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// UpdateCategory sets the name, icon and color of a category. Updating a
// predefined category marks it as edited so that it can be restored later.
func UpdateCategory(db *gorm.DB, category *Category, name, icon, color string) error {
	name = strings.TrimSpace(name)

	if !strings.EqualFold(name, category.Name) {
		free, err := categoryNameFree(db, category.AccountID, name, category.ID)
		if err != nil {
			return err
		}
		if !free {
			return ErrCategoryNameDuplicate
		}
	}

	changed := name != category.Name || icon != category.Icon || color != category.Color

	category.Name = name
	category.Icon = icon
	category.Color = color

	if category.Kind == CategoryKindPredefined && changed {
		category.Edited = true
	}

	return db.Save(category).Error
}

// DeleteCategory soft-deletes a custom category.
//
// Predefined categories cannot be deleted. If the category still has
// expenses, they are reassigned to the substitute category before deletion;
// reassignment and deletion happen in a single transaction so that no reader
// ever sees a partially reassigned state.
func DeleteCategory(db *gorm.DB, category Category, substitute *uuid.UUID) error {
	if category.Kind == CategoryKindPredefined {
		return ErrCategoryPredefined
	}

	expenses, err := ExpensesByCategory(db, category.AccountID, category.ID)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		return db.Delete(&category).Error
	}

	if substitute == nil {
		return ErrCategorySubstituteRequired
	}

	if *substitute == category.ID {
		return ErrCategorySubstituteInvalid
	}

	_, err = CategoryByID(db, category.AccountID, *substitute)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrCategorySubstituteInvalid
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := ReassignExpenses(tx, category.AccountID, category.ID, *substitute)
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}

// RestoreCategory resets an edited predefined category to its fixed
// defaults and clears the edited flag.
func RestoreCategory(db *gorm.DB, category *Category) error {
	if category.Kind != CategoryKindPredefined || !category.Edited {
		return ErrCategoryNotRestorable
	}

	originalName := category.Name
	if category.OriginalName != nil {
		originalName = *category.OriginalName
	}

	i := slices.IndexFunc(predefinedCategories, func(def categoryDefault) bool {
		return def.Name == originalName
	})
	if i < 0 {
		return nil
	}

	def := predefinedCategories[i]
	category.Name = def.Name
	category.Icon = def.Icon
	category.Color = def.Color
	category.Edited = false

	return db.Save(category).Error
}
