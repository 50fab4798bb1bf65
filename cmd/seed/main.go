package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pmitra96/foodshare/database"
	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/gorm/clause"
)

// Seeds the ingredient and tag catalogs from JSON fixtures. Safe to rerun:
// rows that already exist are skipped via ON CONFLICT DO NOTHING.
func main() {
	logger.Init()

	ingredientsPath := flag.String("ingredients", "data/ingredients.json", "path to ingredients fixture")
	tagsPath := flag.String("tags", "data/tags.json", "path to tags fixture")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}
	database.InitDB()

	var ingredients []models.Ingredient
	if err := loadJSON(*ingredientsPath, &ingredients); err != nil {
		logger.Error("Failed to read ingredients fixture", "path", *ingredientsPath, "error", err)
		os.Exit(1)
	}

	inserted := 0
	for _, ingredient := range ingredients {
		result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Ingredient{Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit})
		if result.Error != nil {
			logger.Error("Failed to insert ingredient", "name", ingredient.Name, "error", result.Error)
			os.Exit(1)
		}
		inserted += int(result.RowsAffected)
	}
	logger.Info("Ingredients seeded", "total", len(ingredients), "inserted", inserted)

	var tags []models.Tag
	if err := loadJSON(*tagsPath, &tags); err != nil {
		logger.Warn("Skipping tags fixture", "path", *tagsPath, "error", err)
		return
	}

	inserted = 0
	for _, tag := range tags {
		result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Tag{Name: tag.Name, Color: tag.Color, Slug: tag.Slug})
		if result.Error != nil {
			logger.Error("Failed to insert tag", "name", tag.Name, "error", result.Error)
			os.Exit(1)
		}
		inserted += int(result.RowsAffected)
	}
	logger.Info("Tags seeded", "total", len(tags), "inserted", inserted)
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
