package services

import (
	"strings"
	"testing"
)

func TestAggregateSumsAcrossCart(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "alice")
	shopper := createUser(t, db, "bob")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")
	egg := createIngredient(t, db, "egg", "pc")
	sugar := createIngredient(t, db, "sugar", "g")

	recipes := NewRecipeService(db)
	recipeA, err := recipes.Create(author.ID, &RecipeDraft{
		Name: "A", Text: "a", CookingTime: 10,
		TagIDs: []uint{tag.ID},
		Ingredients: []IngredientAmount{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: egg.ID, Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("create A failed: %v", err)
	}
	recipeB, err := recipes.Create(author.ID, &RecipeDraft{
		Name: "B", Text: "b", CookingTime: 10,
		TagIDs: []uint{tag.ID},
		Ingredients: []IngredientAmount{
			{IngredientID: flour.ID, Amount: 100},
			{IngredientID: sugar.ID, Amount: 50},
		},
	})
	if err != nil {
		t.Fatalf("create B failed: %v", err)
	}

	relations := NewRelationService(db)
	if _, err := relations.AddToCart(shopper.ID, recipeA.ID); err != nil {
		t.Fatalf("cart add A failed: %v", err)
	}
	if _, err := relations.AddToCart(shopper.ID, recipeB.ID); err != nil {
		t.Fatalf("cart add B failed: %v", err)
	}

	svc := NewShoppingListService(db)
	items, err := svc.Aggregate(shopper.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	totals := map[string]int{}
	for _, item := range items {
		totals[item.Name+"/"+item.MeasurementUnit] = item.Total
	}
	want := map[string]int{"flour/g": 300, "egg/pc": 2, "sugar/g": 50}
	if len(totals) != len(want) {
		t.Fatalf("expected %d groups, got %+v", len(want), items)
	}
	for key, total := range want {
		if totals[key] != total {
			t.Fatalf("group %s: expected %d, got %d", key, total, totals[key])
		}
	}

	// Deterministic ordering by ingredient name.
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Fatalf("items not ordered by name: %+v", items)
		}
	}
}

func TestAggregateIgnoresOtherUsersCarts(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "alice")
	shopper := createUser(t, db, "bob")
	other := createUser(t, db, "carol")
	tag := createTag(t, db, "dinner")
	flour := createIngredient(t, db, "flour", "g")

	recipes := NewRecipeService(db)
	recipe, err := recipes.Create(author.ID, validDraft(tag, flour))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	relations := NewRelationService(db)
	if _, err := relations.AddToCart(other.ID, recipe.ID); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	svc := NewShoppingListService(db)
	items, err := svc.Aggregate(shopper.ID)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list for user with empty cart, got %+v", items)
	}
}

func TestAggregateEmptyCart(t *testing.T) {
	db := newTestDB(t)
	shopper := createUser(t, db, "bob")

	svc := NewShoppingListService(db)
	items, err := svc.Aggregate(shopper.ID)
	if err != nil {
		t.Fatalf("empty cart should not error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
	if body := svc.RenderText(items); body != "" {
		t.Fatalf("expected empty body, got %q", body)
	}
}

func TestRenderTextFormat(t *testing.T) {
	svc := &ShoppingListService{}
	body := svc.RenderText([]ShoppingListItem{
		{Name: "egg", MeasurementUnit: "pc", Total: 2},
		{Name: "flour", MeasurementUnit: "g", Total: 300},
	})

	lines := strings.Split(body, "\n")
	if len(lines) != 2 || lines[0] != "egg 2 pc" || lines[1] != "flour 300 g" {
		t.Fatalf("unexpected rendering: %q", body)
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	svc := &ShoppingListService{}
	body, err := svc.RenderPDF([]ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Total: 300},
	})
	if err != nil {
		t.Fatalf("pdf rendering failed: %v", err)
	}
	if len(body) == 0 || !strings.HasPrefix(string(body), "%PDF") {
		t.Fatalf("expected a PDF document, got %d bytes", len(body))
	}
}
