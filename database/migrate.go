package database

import (
	"artizia_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the production database.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate applies the schema. Order matters for foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.AccessToken{},
		&models.VendorProfile{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
	)
}
