package database

import (
	"fmt"
	"log"
	"os"

	"adcards-backend/internal/domain/catalog"
	"adcards-backend/internal/domain/marketing"
	"adcards-backend/internal/domain/orders"
	"adcards-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid() defaults on order/lead/preview ids
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// identity
		&users.User{},
		&users.Profile{},
		&users.VerificationToken{},

		// checkout
		&orders.Order{},

		// marketing funnel
		&marketing.Lead{},
		&marketing.Preview{},
		&marketing.Purchase{},

		// catalog
		&catalog.AdTemplate{},
		&catalog.Download{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
