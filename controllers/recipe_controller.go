package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/pmitra96/foodshare/assets"
	"github.com/pmitra96/foodshare/services"

	"github.com/go-chi/chi/v5"
)

type recipeRequest struct {
	Name        string                      `json:"name"`
	Text        string                      `json:"text"`
	Image       string                      `json:"image"`
	CookingTime int                         `json:"cooking_time"`
	Tags        []uint                      `json:"tags"`
	Ingredients []services.IngredientAmount `json:"ingredients"`
}

type RecipeController struct {
	Recipes      *services.RecipeService
	ShoppingList *services.ShoppingListService
	Assets       *assets.Store
}

func NewRecipeController(recipes *services.RecipeService, shoppingList *services.ShoppingListService, store *assets.Store) *RecipeController {
	return &RecipeController{Recipes: recipes, ShoppingList: shoppingList, Assets: store}
}

// draftFromRequest stores the uploaded image (when present) and builds the
// service draft. The author never comes from the body.
func (c *RecipeController) draftFromRequest(req *recipeRequest) (*services.RecipeDraft, error) {
	draft := services.RecipeDraft{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	}
	if strings.HasPrefix(req.Image, "data:image/") {
		path, err := c.Assets.SaveBase64Image(req.Image)
		if err != nil {
			return nil, err
		}
		draft.Image = "/media/" + path
	}
	return &draft, nil
}

func (c *RecipeController) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := c.draftFromRequest(&req)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidImage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	view, err := c.Recipes.Create(userID, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (c *RecipeController) Get(w http.ResponseWriter, r *http.Request) {
	recipeID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe ID")
		return
	}

	view, err := c.Recipes.Get(uint(recipeID), viewerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (c *RecipeController) List(w http.ResponseWriter, r *http.Request) {
	authorID, _ := strconv.ParseUint(r.URL.Query().Get("author"), 10, 32)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	views, err := c.Recipes.List(uint(authorID), limit, page, viewerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (c *RecipeController) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe ID")
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := c.draftFromRequest(&req)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidImage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	view, err := c.Recipes.Update(uint(recipeID), userID, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (c *RecipeController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recipe ID")
		return
	}

	if err := c.Recipes.Delete(uint(recipeID), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DownloadShoppingCart renders the user's aggregated shopping list as a
// plain-text attachment, or as PDF with ?format=pdf.
func (c *RecipeController) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := c.ShoppingList.Aggregate(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "pdf" {
		body, err := c.ShoppingList.RenderPDF(items)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename=shopping_cart.pdf`)
		w.Write(body)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.Header().Set("Content-Disposition", `attachment; filename=shopping_cart.txt`)
	w.Write([]byte(c.ShoppingList.RenderText(items)))
}
