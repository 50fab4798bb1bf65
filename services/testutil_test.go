package services

import (
	"fmt"
	"testing"

	"github.com/pmitra96/foodshare/database"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A fresh connection to :memory: is a fresh database; keep the pool
	// at one connection so every query sees the same one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return &user
}

func createTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	h := 0
	for _, b := range []byte(name) {
		h = h*31 + int(b)
	}
	tag := models.Tag{
		Name:  name,
		Color: fmt.Sprintf("#%06x", h%0xffffff),
		Slug:  name,
	}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("failed to create tag %q: %v", name, err)
	}
	return &tag
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(&ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %q: %v", name, err)
	}
	return &ingredient
}

func validDraft(tag *models.Tag, ingredient *models.Ingredient) *RecipeDraft {
	return &RecipeDraft{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		TagIDs:      []uint{tag.ID},
		Ingredients: []IngredientAmount{{IngredientID: ingredient.ID, Amount: 200}},
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
