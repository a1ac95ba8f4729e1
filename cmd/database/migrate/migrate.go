package migration

import (
	"fmt"
	"log"

	"cookus-server/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RefreshToken{}); err != nil {
		log.Fatalf("Error migrating refresh token database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecommendRecipe{}); err != nil {
		log.Fatalf("Error migrating recommend recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SelectedRecipe{}); err != nil {
		log.Fatalf("Error migrating selected recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Faq{}); err != nil {
		log.Fatalf("Error migrating faq database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
