package app

import (
	"errors"
	"fmt"

	"artizia_backend/internal/auth"
	"artizia_backend/internal/config"
	"artizia_backend/internal/logger"
	"artizia_backend/internal/models"

	"gorm.io/gorm"
)

// SeedRoles makes sure the three platform roles exist. Idempotent; safe to
// run on every startup.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{
			Name:        models.RoleAdmin,
			DisplayName: "Administrator",
			Description: "System administrator with full access",
		},
		{
			Name:        models.RoleVendor,
			DisplayName: "Vendor",
			Description: "Vendor who can sell products on the platform",
		},
		{
			Name:        models.RoleCustomer,
			DisplayName: "Customer",
			Description: "Customer who can browse and purchase products",
		},
	}

	for _, role := range roles {
		record := role
		err := db.Where("name = ?", role.Name).FirstOrCreate(&record).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

// seedFirstAdmin creates the bootstrap admin account from config. Skipped
// when the config is absent or the account already exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		result := tx.Where("email = ?", adminEmail).First(&existing)
		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		var adminRole models.Role
		if err := tx.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			return fmt.Errorf("admin role missing: %w", err)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		name := cfg.FirstAdminName
		if name == "" {
			name = "Administrator"
		}

		admin := &models.User{
			Name:         name,
			Email:        adminEmail,
			PasswordHash: hash,
			RoleID:       adminRole.ID,
			IsVerified:   true,
		}

		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}
