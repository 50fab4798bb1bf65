package services

import (
	"github.com/pmitra96/foodshare/models"

	"gorm.io/gorm"
)

// UserView is the user representation returned by the API. IsSubscribed is
// computed per-request against the viewer, never stored.
type UserView struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeIngredientView flattens an ingredient association for responses:
// catalog fields plus the per-recipe amount.
type RecipeIngredientView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeView is the full recipe representation.
type RecipeView struct {
	ID               uint                   `json:"id"`
	Tags             []models.Tag           `json:"tags"`
	Author           UserView               `json:"author"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
}

// RecipeSummary is the compact recipe form used by relation responses and
// subscription listings.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func summarize(r *models.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// userView builds a UserView for user as seen by viewerID (0 = anonymous).
func userView(db *gorm.DB, user *models.User, viewerID uint) (UserView, error) {
	view := UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if viewerID != 0 && viewerID != user.ID {
		var count int64
		err := db.Model(&models.Follow{}).
			Where("user_id = ? AND following_id = ?", viewerID, user.ID).
			Count(&count).Error
		if err != nil {
			return UserView{}, err
		}
		view.IsSubscribed = count > 0
	}
	return view, nil
}

// recipeView builds the full representation for a loaded recipe (Tags,
// Ingredients.Ingredient and Author must be preloaded).
func recipeView(db *gorm.DB, recipe *models.Recipe, viewerID uint) (RecipeView, error) {
	ingredients := make([]RecipeIngredientView, 0, len(recipe.Ingredients))
	for _, assoc := range recipe.Ingredients {
		ingredients = append(ingredients, RecipeIngredientView{
			ID:              assoc.IngredientID,
			Name:            assoc.Ingredient.Name,
			MeasurementUnit: assoc.Ingredient.MeasurementUnit,
			Amount:          assoc.Amount,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}

	author, err := userView(db, &recipe.Author, viewerID)
	if err != nil {
		return RecipeView{}, err
	}

	view := RecipeView{
		ID:          recipe.ID,
		Tags:        tags,
		Author:      author,
		Ingredients: ingredients,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
	}

	if viewerID != 0 {
		var count int64
		err := db.Model(&models.FavoriteRecipe{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count).Error
		if err != nil {
			return RecipeView{}, err
		}
		view.IsFavorited = count > 0

		err = db.Model(&models.ShoppingCartRecipe{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count).Error
		if err != nil {
			return RecipeView{}, err
		}
		view.IsInShoppingCart = count > 0
	}
	return view, nil
}
