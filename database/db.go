package database

import (
	"fmt"
	"log"

	"github.com/pmitra96/foodshare/config"
	"github.com/pmitra96/foodshare/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	host := config.GetEnv("DB_HOST", "localhost")
	user := config.GetEnv("DB_USER", "postgres")
	password := config.GetEnv("DB_PASSWORD", "password")
	dbname := config.GetEnv("DB_NAME", "foodshare")
	port := config.GetEnv("DB_PORT", "5432")
	sslmode := config.GetEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	// TranslateError lets unique-constraint violations surface as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("Database connection established")

	log.Println("Running migrations...")
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Migrations completed")
}

// Migrate runs schema migrations for every model. Split out from InitDB so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.IngredientInRecipe{},
		&models.FavoriteRecipe{},
		&models.ShoppingCartRecipe{},
		&models.Follow{},
	)
}
