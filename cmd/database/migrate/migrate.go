package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"mealplanner-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryList{}); err != nil {
		log.Fatalf("Error migrating grocery list database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
