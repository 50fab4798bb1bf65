package services

import (
	"errors"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/gorm"
)

// RelationService manages the user-recipe join relations: favorites and
// shopping cart membership. Both share the same contract: add fails with
// ErrAlreadyExists on a duplicate pair, remove fails with ErrNotFound when
// no relation exists, and a missing recipe fails with ErrNotFound before
// the relation is touched. The unique index is the authoritative guard
// against concurrent adds; the pre-check only gives a cleaner error.
type RelationService struct {
	DB *gorm.DB
}

func NewRelationService(db *gorm.DB) *RelationService {
	return &RelationService{DB: db}
}

func (s *RelationService) getRecipe(recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// AddFavorite marks the recipe as favorited by the user and returns the
// compact recipe form.
func (s *RelationService) AddFavorite(userID, recipeID uint) (*RecipeSummary, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.DB.Model(&models.FavoriteRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	relation := models.FavoriteRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.DB.Create(&relation).Error; err != nil {
		return nil, translateWriteError(err)
	}

	logger.Info("Recipe favorited", "user_id", userID, "recipe_id", recipeID)
	summary := summarize(recipe)
	return &summary, nil
}

// RemoveFavorite deletes the favorite relation or fails with ErrNotFound.
func (s *RelationService) RemoveFavorite(userID, recipeID uint) error {
	if _, err := s.getRecipe(recipeID); err != nil {
		return err
	}

	result := s.DB.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.FavoriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("Recipe unfavorited", "user_id", userID, "recipe_id", recipeID)
	return nil
}

// AddToCart puts the recipe into the user's shopping cart and returns the
// compact recipe form.
func (s *RelationService) AddToCart(userID, recipeID uint) (*RecipeSummary, error) {
	recipe, err := s.getRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.DB.Model(&models.ShoppingCartRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	relation := models.ShoppingCartRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.DB.Create(&relation).Error; err != nil {
		return nil, translateWriteError(err)
	}

	logger.Info("Recipe added to cart", "user_id", userID, "recipe_id", recipeID)
	summary := summarize(recipe)
	return &summary, nil
}

// RemoveFromCart deletes the cart relation or fails with ErrNotFound.
func (s *RelationService) RemoveFromCart(userID, recipeID uint) error {
	if _, err := s.getRecipe(recipeID); err != nil {
		return err
	}

	result := s.DB.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCartRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	logger.Info("Recipe removed from cart", "user_id", userID, "recipe_id", recipeID)
	return nil
}
