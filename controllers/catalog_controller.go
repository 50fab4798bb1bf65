package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// CatalogController serves the read-mostly reference data: ingredients
// and tags.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

func (c *CatalogController) ListTags(w http.ResponseWriter, r *http.Request) {
	var tags []models.Tag
	if err := c.DB.Order("id").Find(&tags).Error; err != nil {
		logger.Error("Failed to fetch tags", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch tags")
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (c *CatalogController) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tag ID")
		return
	}

	var tag models.Tag
	if err := c.DB.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "tag not found")
			return
		}
		logger.Error("Failed to fetch tag", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch tag")
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (c *CatalogController) ListIngredients(w http.ResponseWriter, r *http.Request) {
	query := c.DB.Order("name")
	if name := r.URL.Query().Get("name"); name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}

	var ingredients []models.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		logger.Error("Failed to fetch ingredients", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch ingredients")
		return
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (c *CatalogController) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ingredient ID")
		return
	}

	var ingredient models.Ingredient
	if err := c.DB.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "ingredient not found")
			return
		}
		logger.Error("Failed to fetch ingredient", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch ingredient")
		return
	}
	writeJSON(w, http.StatusOK, ingredient)
}
