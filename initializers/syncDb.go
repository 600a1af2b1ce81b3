package initializers

import (
	"log"

	"github.com/SHSW-Syu/SSend/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Project{},
		&models.Product{},
		&models.Topping{},
		&models.Order{},
		&models.Item{},
		&models.ProductImage{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	log.Println("Database synced successfully.")
}
