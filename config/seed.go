package config

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"superstore-cli/models"
)

// seedProducts is the fixed catalog inserted on first run. IDs and prices are
// stable so they can double as test fixtures.
var seedProducts = []models.Product{
	{ProductID: "PROD-001", Category: "Furniture", SubCategory: "Chairs", ProductName: "Executive Leather Chair", UnitPrice: decimal.RequireFromString("299.99")},
	{ProductID: "PROD-002", Category: "Furniture", SubCategory: "Tables", ProductName: "L-Shape Office Desk", UnitPrice: decimal.RequireFromString("449.99")},
	{ProductID: "PROD-003", Category: "Furniture", SubCategory: "Chairs", ProductName: "Ergonomic Mesh Chair", UnitPrice: decimal.RequireFromString("189.99")},
	{ProductID: "PROD-004", Category: "Furniture", SubCategory: "Tables", ProductName: "Conference Table", UnitPrice: decimal.RequireFromString("799.99")},
	{ProductID: "PROD-005", Category: "Furniture", SubCategory: "Storage", ProductName: "Bookshelf", UnitPrice: decimal.RequireFromString("159.99")},
	{ProductID: "PROD-006", Category: "Office Supplies", SubCategory: "Storage", ProductName: "File Cabinet", UnitPrice: decimal.RequireFromString("129.99")},
	{ProductID: "PROD-007", Category: "Office Supplies", SubCategory: "Paper", ProductName: "Printer Paper Box", UnitPrice: decimal.RequireFromString("45.99")},
	{ProductID: "PROD-008", Category: "Office Supplies", SubCategory: "Binders", ProductName: "Heavy Duty Binder", UnitPrice: decimal.RequireFromString("18.99")},
	{ProductID: "PROD-009", Category: "Office Supplies", SubCategory: "Supplies", ProductName: "Stapler Set", UnitPrice: decimal.RequireFromString("12.99")},
	{ProductID: "PROD-010", Category: "Office Supplies", SubCategory: "Art", ProductName: "Whiteboard", UnitPrice: decimal.RequireFromString("89.99")},
	{ProductID: "PROD-011", Category: "Technology", SubCategory: "Phones", ProductName: "VoIP Phone System", UnitPrice: decimal.RequireFromString("299.99")},
	{ProductID: "PROD-012", Category: "Technology", SubCategory: "Accessories", ProductName: "Wireless Mouse", UnitPrice: decimal.RequireFromString("29.99")},
	{ProductID: "PROD-013", Category: "Technology", SubCategory: "Machines", ProductName: "Color Laser Printer", UnitPrice: decimal.RequireFromString("499.99")},
	{ProductID: "PROD-014", Category: "Technology", SubCategory: "Copiers", ProductName: "Heavy Duty Copier", UnitPrice: decimal.RequireFromString("1299.99")},
	{ProductID: "PROD-015", Category: "Technology", SubCategory: "Accessories", ProductName: "Mechanical Keyboard", UnitPrice: decimal.RequireFromString("89.99")},
}

// MigrateAndSeed creates the three tables if needed and populates the product
// catalog on first run only (when the products table did not exist yet).
func MigrateAndSeed(db *gorm.DB) error {
	hadProducts := db.Migrator().HasTable(&models.Product{})

	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if !hadProducts {
		log.Println("Products table created")
		if err := SeedProducts(db); err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts inserts the fixed product catalog. Existing rows are left
// untouched, so calling it twice is safe.
func SeedProducts(db *gorm.DB) error {
	for _, p := range seedProducts {
		product := p
		if err := db.FirstOrCreate(&product, models.Product{ProductID: p.ProductID}).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ProductID, err)
		}
	}
	log.Printf("Seeded %d products", len(seedProducts))
	return nil
}

// SeedProductCount returns the size of the fixed catalog (for tests)
func SeedProductCount() int {
	return len(seedProducts)
}
