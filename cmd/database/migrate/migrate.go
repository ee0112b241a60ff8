package migration

import (
	"fmt"
	"log"

	"Experience-Club-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Brand{},
		&entities.Category{},
		&entities.Product{},
		&entities.ProductImage{},
		&entities.ProductTranslation{},
		&entities.Currency{},
		&entities.Cart{},
		&entities.CartItem{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.GameTask{},
		&entities.UserTaskProgress{},
		&entities.CoinTransaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	seedCurrencies(db)

	fmt.Println("Database migration complete")
	return nil
}

// seedCurrencies inserts the display currencies once; USD is the base with
// rate 1 and all product prices are stored in it.
func seedCurrencies(db *gorm.DB) {
	currencies := []entities.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 1, IsActive: true},
		{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.92, IsActive: true},
		{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.79, IsActive: true},
		{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Rate: 16250, IsActive: true},
	}
	for _, currency := range currencies {
		db.Where(entities.Currency{Code: currency.Code}).FirstOrCreate(&currency)
	}
}
