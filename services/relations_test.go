package services

import (
	"errors"
	"testing"

	"github.com/pmitra96/foodshare/models"
)

func setupRecipe(t *testing.T) (*RelationService, *models.User, *RecipeView, *RecipeService) {
	t.Helper()
	db := newTestDB(t)
	author := createUser(t, db, "alice")
	tag := createTag(t, db, "breakfast")
	flour := createIngredient(t, db, "flour", "g")

	recipes := NewRecipeService(db)
	created, err := recipes.Create(author.ID, validDraft(tag, flour))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	fan := createUser(t, db, "bob")
	return NewRelationService(db), fan, created, recipes
}

func TestAddFavoriteOnceThenConflict(t *testing.T) {
	relations, fan, recipe, _ := setupRecipe(t)

	summary, err := relations.AddFavorite(fan.ID, recipe.ID)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if summary.ID != recipe.ID || summary.Name != recipe.Name || summary.CookingTime != recipe.CookingTime {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if _, err := relations.AddFavorite(fan.ID, recipe.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if n := countRows(t, relations.DB, &models.FavoriteRecipe{}); n != 1 {
		t.Fatalf("expected exactly one favorite row, got %d", n)
	}
}

func TestRemoveFavoriteNotFavorited(t *testing.T) {
	relations, fan, recipe, _ := setupRecipe(t)

	if err := relations.RemoveFavorite(fan.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteRemoveThenGone(t *testing.T) {
	relations, fan, recipe, _ := setupRecipe(t)

	if _, err := relations.AddFavorite(fan.ID, recipe.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := relations.RemoveFavorite(fan.ID, recipe.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := relations.RemoveFavorite(fan.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestFavoriteMissingRecipe(t *testing.T) {
	relations, fan, _, _ := setupRecipe(t)

	if _, err := relations.AddFavorite(fan.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing recipe, got %v", err)
	}
	if err := relations.RemoveFavorite(fan.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing recipe, got %v", err)
	}
}

func TestCartAddRemoveContract(t *testing.T) {
	relations, fan, recipe, _ := setupRecipe(t)

	summary, err := relations.AddToCart(fan.ID, recipe.ID)
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if summary.ID != recipe.ID {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if _, err := relations.AddToCart(fan.ID, recipe.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if n := countRows(t, relations.DB, &models.ShoppingCartRecipe{}); n != 1 {
		t.Fatalf("expected exactly one cart row, got %d", n)
	}

	if err := relations.RemoveFromCart(fan.ID, recipe.ID); err != nil {
		t.Fatalf("cart remove failed: %v", err)
	}
	if err := relations.RemoveFromCart(fan.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteAndCartAreIndependent(t *testing.T) {
	relations, fan, recipe, recipes := setupRecipe(t)

	if _, err := relations.AddFavorite(fan.ID, recipe.ID); err != nil {
		t.Fatalf("favorite failed: %v", err)
	}

	view, err := recipes.Get(recipe.ID, fan.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !view.IsFavorited || view.IsInShoppingCart {
		t.Fatalf("expected favorited only, got favorited=%v in_cart=%v", view.IsFavorited, view.IsInShoppingCart)
	}
}

func TestAddFavoriteSurfacesStorageErrors(t *testing.T) {
	relations, fan, recipe, _ := setupRecipe(t)

	if err := relations.DB.Migrator().DropTable(&models.FavoriteRecipe{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	_, err := relations.AddFavorite(fan.ID, recipe.ID)
	if err == nil {
		t.Fatalf("expected an error when the relation table is unavailable")
	}
	if errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrNotFound) {
		t.Fatalf("storage failure must not map to a domain error, got %v", err)
	}
}
