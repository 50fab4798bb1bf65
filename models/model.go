package models

import (
	"time"
)

// User represents an authenticated user in the system.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Recipes []Recipe `gorm:"foreignKey:AuthorID" json:"-"`
}

// Tag is an administrator-managed label attachable to recipes.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:7;uniqueIndex;not null" json:"color"`
	Slug  string `gorm:"size:30;uniqueIndex;not null" json:"slug"`
}

// Ingredient is catalog reference data: a purchasable ingredient and the
// unit its amounts are measured in.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;index;not null" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null" json:"measurement_unit"`
}

// Recipe is the aggregate root: the recipe row plus its owned ingredient
// associations and tag set.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"-"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Image       string    `gorm:"size:255" json:"image"`
	Text        string    `gorm:"type:text" json:"text"`
	CookingTime int       `gorm:"not null;default:1" json:"cooking_time"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Author      User                 `gorm:"foreignKey:AuthorID" json:"-"`
	Tags        []Tag                `gorm:"many2many:recipe_tags" json:"-"`
	Ingredients []IngredientInRecipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// IngredientInRecipe links a recipe to one ingredient with an amount.
// A recipe cannot list the same ingredient twice.
type IngredientInRecipe struct {
	ID           uint `gorm:"primaryKey" json:"-"`
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"-"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"id"`
	Amount       int  `gorm:"not null;default:1" json:"amount"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}

// FavoriteRecipe records that a user favorited a recipe.
type FavoriteRecipe struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
}

// ShoppingCartRecipe records that a recipe is in a user's shopping cart.
// Same shape as FavoriteRecipe, independent set.
type ShoppingCartRecipe struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`
}

// Follow records a subscription of one user to another user's recipes.
type Follow struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"user_id"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`

	Following User `gorm:"foreignKey:FollowingID" json:"-"`
}
