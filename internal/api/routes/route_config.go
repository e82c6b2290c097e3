package routes

import (
	"github.com/gofiber/fiber/v2"

	"mealplanner-backend/internal/api/handlers"
	"mealplanner-backend/internal/middleware"
	"mealplanner-backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	MealPlanHandler handlers.MealPlanHandler
	PantryHandler   handlers.PantryHandler
	GroceryHandler  handlers.GroceryHandler
	BudgetHandler   handlers.BudgetHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.MealPlans()
	c.Pantry()
	c.GroceryLists()
	c.Budget()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) MealPlans() {
	plans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	plans.Post("", c.MealPlanHandler.CreateMealPlan)
	plans.Get("", c.MealPlanHandler.GetMealPlans)
	plans.Get("/:id", c.MealPlanHandler.GetMealPlan)
	plans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
	plans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)

	// meals inside a plan
	plans.Post("/:id/meals", c.MealPlanHandler.AddMeal)
	plans.Get("/:id/meals", c.MealPlanHandler.GetMeals)
	plans.Put("/:id/meals/:meal_id", c.MealPlanHandler.UpdateMeal)
	plans.Delete("/:id/meals/:meal_id", c.MealPlanHandler.DeleteMeal)

	// grocery list generation for a plan; GET returns the newest list
	plans.Post("/:id/grocery-list", c.GroceryHandler.GenerateGroceryList)
	plans.Get("/:id/grocery-list", c.GroceryHandler.GetLatestGroceryList)
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) GroceryLists() {
	lists := c.App.Group("/api/v1/grocery-lists", c.Middleware.AuthMiddleware(c.JWTService))

	lists.Get("/:id", c.GroceryHandler.GetGroceryList)
	lists.Patch("/:id", c.GroceryHandler.UpdateGroceryList)
	lists.Delete("/:id", c.GroceryHandler.DeleteGroceryList)
	lists.Get("/:id/export", c.GroceryHandler.ExportGroceryList)
	lists.Post("/:id/share", c.GroceryHandler.ShareGroceryList)
}

func (c *Config) Budget() {
	budget := c.App.Group("/api/v1/price-estimates", c.Middleware.AuthMiddleware(c.JWTService))

	budget.Post("", c.BudgetHandler.EstimateBudget)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
