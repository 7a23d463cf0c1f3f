package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amitxthedev/Zenox-Dev-Apis/config"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
)

// Connect opens the Postgres connection described by cfg and runs the schema
// migrations. TranslateError is on so unique-key violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection successfully opened.")

	if err := db.AutoMigrate(&models.User{}, &models.Lead{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Println("Database migrated successfully.")

	return db, nil
}
