package migration

import (
	"fmt"
	"log"

	"daily-shops/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Shop{}); err != nil {
		log.Fatalf("Error migrating shop database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Good{}); err != nil {
		log.Fatalf("Error migrating good database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GoodsPrice{}); err != nil {
		log.Fatalf("Error migrating goods price database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receipt{}); err != nil {
		log.Fatalf("Error migrating receipt database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
