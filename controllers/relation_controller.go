package controllers

import (
	"net/http"
	"strconv"

	"github.com/pmitra96/foodshare/services"

	"github.com/go-chi/chi/v5"
)

// RelationController exposes the favorite and shopping-cart toggles. Both
// share one handler shape parameterized by the targeted relation.
type RelationController struct {
	Relations *services.RelationService
}

func NewRelationController(relations *services.RelationService) *RelationController {
	return &RelationController{Relations: relations}
}

func (c *RelationController) add(w http.ResponseWriter, r *http.Request, add func(userID, recipeID uint) (*services.RecipeSummary, error)) {
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

	summary, err := add(userID, uint(recipeID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (c *RelationController) remove(w http.ResponseWriter, r *http.Request, remove func(userID, recipeID uint) error) {
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

	if err := remove(userID, uint(recipeID)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *RelationController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	c.add(w, r, c.Relations.AddFavorite)
}

func (c *RelationController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	c.remove(w, r, c.Relations.RemoveFavorite)
}

func (c *RelationController) AddToCart(w http.ResponseWriter, r *http.Request) {
	c.add(w, r, c.Relations.AddToCart)
}

func (c *RelationController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	c.remove(w, r, c.Relations.RemoveFromCart)
}
