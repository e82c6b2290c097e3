package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"mealplanner-backend/internal/api/handlers"
	"mealplanner-backend/internal/api/routes"
	"mealplanner-backend/internal/middleware"
	"mealplanner-backend/internal/utils"
	"mealplanner-backend/internal/utils/storage"
	"mealplanner-backend/pkg/budget"
	"mealplanner-backend/pkg/grocery"
	"mealplanner-backend/pkg/jwt"
	"mealplanner-backend/pkg/mealplan"
	"mealplanner-backend/pkg/pantry"
	"mealplanner-backend/pkg/recipe"
	"mealplanner-backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// The deterministic generator is the default; Gemini takes over
	// when an API key is configured.
	var generator grocery.Generator
	if apiKey := utils.GetConfig("GEMINI_API_KEY"); apiKey != "" {
		generator = grocery.NewGeminiGenerator(apiKey, utils.GetConfig("GEMINI_MODEL"))
	} else {
		generator = grocery.NewEngineGenerator()
	}

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	pantryService := pantry.NewPantryService(pantryRepository)
	groceryService := grocery.NewGroceryService(
		groceryRepository,
		mealPlanRepository,
		recipeRepository,
		pantryRepository,
		generator,
	)
	budgetService := budget.NewBudgetService(groceryService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	budgetHandler := handlers.NewBudgetHandler(budgetService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		MealPlanHandler: mealPlanHandler,
		PantryHandler:   pantryHandler,
		GroceryHandler:  groceryHandler,
		BudgetHandler:   budgetHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
