package services

import (
	"errors"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/gorm"
)

// IngredientAmount is one (ingredient, amount) pair of a recipe draft.
type IngredientAmount struct {
	IngredientID uint `json:"id"`
	Amount       int  `json:"amount"`
}

// RecipeDraft is the unvalidated input for creating or updating a recipe.
// Image is the already-stored media path; the controller resolves uploads
// before the draft reaches the service.
type RecipeDraft struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []IngredientAmount
}

// RecipeService owns recipe validation and the transactional writes that
// keep a recipe and its ingredient/tag associations consistent.
type RecipeService struct {
	DB *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{DB: db}
}

// validateDraft runs the draft checks in a fixed order, failing fast with
// the rule-specific error. On success it returns the resolved tags and
// ingredients so the write path does not look them up again.
func (s *RecipeService) validateDraft(draft *RecipeDraft) ([]models.Tag, []models.Ingredient, error) {
	if draft.CookingTime < 1 {
		return nil, nil, ErrInvalidCookingTime
	}

	if len(draft.TagIDs) == 0 {
		return nil, nil, ErrNoTags
	}
	seenTags := make(map[uint]bool, len(draft.TagIDs))
	for _, id := range draft.TagIDs {
		if seenTags[id] {
			return nil, nil, ErrDuplicateTag
		}
		seenTags[id] = true
	}
	var tags []models.Tag
	if err := s.DB.Where("id IN ?", draft.TagIDs).Find(&tags).Error; err != nil {
		return nil, nil, err
	}
	if len(tags) != len(draft.TagIDs) {
		return nil, nil, ErrUnknownTag
	}

	if len(draft.Ingredients) == 0 {
		return nil, nil, ErrNoIngredients
	}
	for _, pair := range draft.Ingredients {
		if pair.Amount < 1 {
			return nil, nil, ErrInvalidAmount
		}
	}
	seenIngredients := make(map[uint]bool, len(draft.Ingredients))
	ingredientIDs := make([]uint, 0, len(draft.Ingredients))
	for _, pair := range draft.Ingredients {
		if seenIngredients[pair.IngredientID] {
			return nil, nil, ErrDuplicateIngredient
		}
		seenIngredients[pair.IngredientID] = true
		ingredientIDs = append(ingredientIDs, pair.IngredientID)
	}
	var ingredients []models.Ingredient
	if err := s.DB.Where("id IN ?", ingredientIDs).Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}
	if len(ingredients) != len(draft.Ingredients) {
		return nil, nil, ErrUnknownIngredient
	}

	return tags, ingredients, nil
}

// Create validates the draft and persists the recipe, its ingredient rows
// and its tag set as one transaction. The author is always the acting
// user, never client-supplied.
func (s *RecipeService) Create(authorID uint, draft *RecipeDraft) (*RecipeView, error) {
	tags, _, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        draft.Name,
		Image:       draft.Image,
		Text:        draft.Text,
		CookingTime: draft.CookingTime,
	}

	tx := s.DB.Begin()
	if err := tx.Create(&recipe).Error; err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := insertIngredients(tx, recipe.ID, draft.Ingredients); err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Recipe created", "recipe_id", recipe.ID, "author_id", authorID)
	return s.Get(recipe.ID, authorID)
}

// Update validates the draft, checks authorship, and replaces the recipe's
// ingredient rows and tag set wholesale inside one transaction.
func (s *RecipeService) Update(recipeID, actorID uint, draft *RecipeDraft) (*RecipeView, error) {
	var recipe models.Recipe
	if err := s.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != actorID {
		return nil, ErrForbidden
	}

	tags, _, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	recipe.Name = draft.Name
	recipe.Text = draft.Text
	recipe.CookingTime = draft.CookingTime
	if draft.Image != "" {
		recipe.Image = draft.Image
	}

	tx := s.DB.Begin()
	if err := tx.Save(&recipe).Error; err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	// Delete-all-then-reinsert, not incremental diffing.
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientInRecipe{}).Error; err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := insertIngredients(tx, recipe.ID, draft.Ingredients); err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
		tx.Rollback()
		return nil, translateWriteError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Recipe updated", "recipe_id", recipe.ID, "author_id", actorID)
	return s.Get(recipe.ID, actorID)
}

// Delete removes a recipe and cascades to its ingredient rows, favorite
// relations and cart relations.
func (s *RecipeService) Delete(recipeID, actorID uint) error {
	var recipe models.Recipe
	if err := s.DB.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if recipe.AuthorID != actorID {
		return ErrForbidden
	}

	tx := s.DB.Begin()
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientInRecipe{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.FavoriteRecipe{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.ShoppingCartRecipe{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&recipe).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return err
	}

	logger.Info("Recipe deleted", "recipe_id", recipeID, "author_id", actorID)
	return nil
}

// Get returns the full representation of one recipe as seen by viewerID
// (0 = anonymous).
func (s *RecipeService) Get(recipeID, viewerID uint) (*RecipeView, error) {
	var recipe models.Recipe
	err := s.DB.
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Preload("Author").
		First(&recipe, recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view, err := recipeView(s.DB, &recipe, viewerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// List returns recipes, newest first, optionally filtered by author.
// limit <= 0 means no cap; page starts at 1.
func (s *RecipeService) List(authorID uint, limit, page int, viewerID uint) ([]RecipeView, error) {
	query := s.DB.
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Preload("Author").
		Order("id DESC")
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}
	if limit > 0 {
		query = query.Limit(limit)
		if page > 1 {
			query = query.Offset((page - 1) * limit)
		}
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := recipeView(s.DB, &recipes[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func insertIngredients(tx *gorm.DB, recipeID uint, pairs []IngredientAmount) error {
	for _, pair := range pairs {
		row := models.IngredientInRecipe{
			RecipeID:     recipeID,
			IngredientID: pair.IngredientID,
			Amount:       pair.Amount,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// translateWriteError maps constraint violations raced past validation to
// the conflict error; everything else passes through.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}
