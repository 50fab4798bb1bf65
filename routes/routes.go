package routes

import (
	"net/http"

	"github.com/pmitra96/foodshare/assets"
	"github.com/pmitra96/foodshare/config"
	"github.com/pmitra96/foodshare/controllers"
	auth "github.com/pmitra96/foodshare/middleware"
	"github.com/pmitra96/foodshare/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mediaRoot := config.GetEnv("MEDIA_ROOT", "media")
	store := assets.NewStore(mediaRoot)

	recipeService := services.NewRecipeService(db)
	shoppingListService := services.NewShoppingListService(db)
	relationService := services.NewRelationService(db)
	followService := services.NewFollowService(db)
	authService := services.NewAuthService(db)

	catalogController := controllers.NewCatalogController(db)
	recipeController := controllers.NewRecipeController(recipeService, shoppingListService, store)
	relationController := controllers.NewRelationController(relationService)
	userController := controllers.NewUserController(authService, followService)

	// Public / Auth
	r.Post("/auth/register", userController.Register)
	r.Post("/auth/login", userController.Login)

	// Catalog (public)
	r.Get("/tags", catalogController.ListTags)
	r.Get("/tags/{id}", catalogController.GetTag)
	r.Get("/ingredients", catalogController.ListIngredients)
	r.Get("/ingredients/{id}", catalogController.GetIngredient)

	// Recipe reads: anonymous allowed, derived fields need the viewer
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth)
		r.Get("/recipes", recipeController.List)
		r.Get("/recipes/{id}", recipeController.Get)
		r.Get("/users/{id}", userController.Get)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Post("/recipes", recipeController.Create)
		r.Patch("/recipes/{id}", recipeController.Update)
		r.Put("/recipes/{id}", recipeController.Update)
		r.Delete("/recipes/{id}", recipeController.Delete)

		r.Get("/recipes/download_shopping_cart", recipeController.DownloadShoppingCart)

		r.Get("/recipes/{id}/favorite", relationController.AddFavorite)
		r.Delete("/recipes/{id}/favorite", relationController.RemoveFavorite)
		r.Get("/recipes/{id}/shopping_cart", relationController.AddToCart)
		r.Delete("/recipes/{id}/shopping_cart", relationController.RemoveFromCart)

		r.Get("/users/me", userController.Me)
		r.Get("/users/subscriptions", userController.Subscriptions)
		r.Get("/users/{id}/subscribe", userController.Subscribe)
		r.Delete("/users/{id}/subscribe", userController.Unsubscribe)
	})

	// Uploaded recipe images
	fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot)))
	r.Get("/media/*", fileServer.ServeHTTP)

	return r
}
