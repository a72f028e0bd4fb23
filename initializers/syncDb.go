package initializers

import (
	"log"

	"github.com/ready24/shop-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tool{},
		&models.Product{},
		&models.Picture{},
		&models.PromoCode{},
		&models.ShoppingCart{},
		&models.ShoppingCartProduct{},
		&models.Address{},
	)
	log.Println("Database synced successfully.")
}
