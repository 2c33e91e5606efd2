// Command seed fills the database with demo data for local development:
// the stock categories, two approved vendors, two customers and a small
// product catalog.
package main

import (
	"errors"
	"fmt"
	"time"

	"artizia_backend/database"
	"artizia_backend/internal/app"
	"artizia_backend/internal/auth"
	"artizia_backend/internal/config"
	"artizia_backend/internal/logger"
	"artizia_backend/internal/models"

	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := app.SeedRoles(db); err != nil {
		logger.Fatal("Failed to seed roles", "error", err)
	}

	if err := seedCategories(db); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}
	if err := seedUsers(db); err != nil {
		logger.Fatal("Failed to seed users", "error", err)
	}
	if err := seedProducts(db); err != nil {
		logger.Fatal("Failed to seed products", "error", err)
	}

	logger.Info("Demo data seeded")
}

func seedCategories(db *gorm.DB) error {
	categories := []struct {
		Name        string
		Description string
	}{
		{"Handmade Crafts", "Unique handcrafted items"},
		{"Food & Beverages", "Homemade food and drinks"},
		{"Games & Toys", "Custom games and handmade toys"},
		{"Art & Decor", "Artwork and home decoration"},
		{"Jewelry & Accessories", "Handmade jewelry and accessories"},
	}

	for i, c := range categories {
		record := models.Category{
			Name:        c.Name,
			Slug:        slug.Make(c.Name),
			Description: c.Description,
			IsActive:    true,
			SortOrder:   i,
		}
		if err := db.Where("slug = ?", record.Slug).FirstOrCreate(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	now := time.Now()

	vendors := []struct {
		Name     string
		Email    string
		Business models.VendorProfile
	}{
		{
			Name:  "John Vendor",
			Email: "vendor1@example.com",
			Business: models.VendorProfile{
				BusinessName:        "John's Handmade Workshop",
				BusinessDescription: "Quality handcrafted goods made to order.",
				BusinessAddress:     "123 Main St, City, Country",
				BusinessPhone:       "+1234567890",
				BusinessEmail:       "workshop@johnvendor.com",
				Status:              models.VendorStatusApproved,
				ApprovedAt:          &now,
			},
		},
		{
			Name:  "Jane Seller",
			Email: "vendor2@example.com",
			Business: models.VendorProfile{
				BusinessName:        "Jane's Artisan Boutique",
				BusinessDescription: "Small-batch artisan goods and decor.",
				BusinessAddress:     "456 Artisan Ave, City, Country",
				BusinessPhone:       "+1234567891",
				BusinessEmail:       "contact@janeboutique.com",
				Status:              models.VendorStatusApproved,
				ApprovedAt:          &now,
			},
		},
	}

	for _, v := range vendors {
		user, err := firstOrCreateUser(db, v.Name, v.Email, models.RoleVendor, true)
		if err != nil {
			return err
		}

		profile := v.Business
		profile.UserID = user.ID
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
	}

	customers := []struct {
		Name  string
		Email string
	}{
		{"Alice Customer", "customer1@example.com"},
		{"Bob Buyer", "customer2@example.com"},
	}
	for _, c := range customers {
		if _, err := firstOrCreateUser(db, c.Name, c.Email, models.RoleCustomer, false); err != nil {
			return err
		}
	}
	return nil
}

func firstOrCreateUser(db *gorm.DB, name, email string, roleName models.RoleName, isSeller bool) (*models.User, error) {
	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return nil, fmt.Errorf("role %s missing: %w", roleName, err)
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return nil, err
	}

	user = models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		IsSeller:     isSeller,
		IsVerified:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedProducts(db *gorm.DB) error {
	var vendors []models.User
	if err := db.Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleVendor).Find(&vendors).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}

	if len(vendors) == 0 || len(categories) == 0 {
		return nil
	}

	categoryBySlug := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		categoryBySlug[c.Slug] = c
	}

	comparePrice := func(v float64) *float64 { return &v }
	sku := func(v string) *string { return &v }

	products := []struct {
		models.Product
		CategorySlug string
	}{
		{
			Product: models.Product{
				Name:              "Hand-Carved Wooden Bowl",
				Description:       "Food-safe walnut bowl carved and oiled by hand.",
				ShortDescription:  "Walnut serving bowl.",
				Price:             59.99,
				ComparePrice:      comparePrice(74.99),
				SKU:               sku("BOWL001"),
				InventoryQuantity: 18,
				IsFeatured:        true,
			},
			CategorySlug: "handmade-crafts",
		},
		{
			Product: models.Product{
				Name:              "Small-Batch Berry Jam",
				Description:       "Slow-cooked jam from locally picked berries, no preservatives.",
				ShortDescription:  "Homemade berry jam.",
				Price:             8.50,
				SKU:               sku("JAM001"),
				InventoryQuantity: 60,
			},
			CategorySlug: "food-beverages",
		},
		{
			Product: models.Product{
				Name:              "Wooden Chess Set",
				Description:       "Hand-finished chess set with weighted pieces and folding board.",
				ShortDescription:  "Classic wooden chess set.",
				Price:             129.99,
				ComparePrice:      comparePrice(159.99),
				SKU:               sku("CHESS001"),
				InventoryQuantity: 9,
				IsFeatured:        true,
			},
			CategorySlug: "games-toys",
		},
		{
			Product: models.Product{
				Name:              "Abstract Canvas Print",
				Description:       "Limited print of an original acrylic painting, signed by the artist.",
				ShortDescription:  "Signed abstract print.",
				Price:             89.00,
				SKU:               sku("PRINT001"),
				InventoryQuantity: 25,
			},
			CategorySlug: "art-decor",
		},
		{
			Product: models.Product{
				Name:              "Silver Leaf Pendant",
				Description:       "Sterling silver pendant cast from a real maple leaf.",
				ShortDescription:  "Sterling silver pendant.",
				Price:             45.00,
				ComparePrice:      comparePrice(55.00),
				SKU:               sku("PNDT001"),
				InventoryQuantity: 30,
			},
			CategorySlug: "jewelry-accessories",
		},
		{
			Product: models.Product{
				Name:              "Ceramic Coffee Mug Set",
				Description:       "Set of two wheel-thrown mugs with a matte glaze.",
				ShortDescription:  "Two handmade mugs.",
				Price:             38.00,
				SKU:               sku("MUGS001"),
				InventoryQuantity: 4,
			},
			CategorySlug: "handmade-crafts",
		},
	}

	for i, p := range products {
		category, ok := categoryBySlug[p.CategorySlug]
		if !ok {
			continue
		}

		record := p.Product
		record.UserID = vendors[i%len(vendors)].ID
		record.CategoryID = category.ID
		record.Slug = slug.Make(record.Name)
		record.IsActive = true

		if err := db.Where("slug = ?", record.Slug).FirstOrCreate(&record).Error; err != nil {
			return err
		}
	}
	return nil
}
