package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmitra96/foodshare/models"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"
)

// ShoppingListItem is one aggregated line of the shopping list: an
// ingredient grouped by name and unit with the summed amount.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}

// ShoppingListService expands a user's cart into deduplicated ingredient
// totals.
type ShoppingListService struct {
	DB *gorm.DB
}

func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{DB: db}
}

// Aggregate sums ingredient amounts across every recipe in the user's
// cart, grouped by (name, measurement unit). An empty cart yields an
// empty slice, not an error. Ordered by ingredient name so output is
// deterministic.
func (s *ShoppingListService) Aggregate(userID uint) ([]ShoppingListItem, error) {
	cart := s.DB.Model(&models.ShoppingCartRecipe{}).
		Select("recipe_id").
		Where("user_id = ?", userID)

	items := []ShoppingListItem{}
	err := s.DB.Model(&models.IngredientInRecipe{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_in_recipes.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = ingredient_in_recipes.ingredient_id").
		Where("ingredient_in_recipes.recipe_id IN (?)", cart).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RenderText formats the list one line per item: "<name> <total> <unit>".
func (s *ShoppingListService) RenderText(items []ShoppingListItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %d %s", item.Name, item.Total, item.MeasurementUnit))
	}
	return strings.Join(lines, "\n")
}

// RenderPDF renders the list as a one-page-per-overflow PDF document.
func (s *ShoppingListService) RenderPDF(items []ShoppingListItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Shopping list")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	for _, item := range items {
		pdf.Cell(0, 8, fmt.Sprintf("%s %d %s", item.Name, item.Total, item.MeasurementUnit))
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
