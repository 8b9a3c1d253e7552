package models

import "github.com/shopspring/decimal"

// Product represents a catalog item that orders reference
type Product struct {
	ProductID   string          `gorm:"primaryKey;type:varchar(20)" json:"product_id"`
	Category    string          `gorm:"type:varchar(20);not null" json:"category"`
	SubCategory string          `gorm:"type:varchar(20);not null" json:"sub_category"`
	ProductName string          `gorm:"type:varchar(100);not null" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Categories maps each product category to its allowed sub-categories
var Categories = map[string][]string{
	"Furniture":       {"Bookcases", "Chairs", "Furnishings", "Tables"},
	"Office Supplies": {"Appliances", "Art", "Binders", "Envelopes", "Fasteners", "Labels", "Paper", "Storage", "Supplies"},
	"Technology":      {"Accessories", "Copiers", "Machines", "Phones"},
}

// CategoryNames returns the category names in a stable order
func CategoryNames() []string {
	return []string{"Furniture", "Office Supplies", "Technology"}
}

// ValidCategory reports whether the category is one of the fixed set
func ValidCategory(category string) bool {
	_, ok := Categories[category]
	return ok
}

// ValidSubCategory reports whether the sub-category belongs to the category
func ValidSubCategory(category, subCategory string) bool {
	for _, s := range Categories[category] {
		if s == subCategory {
			return true
		}
	}
	return false
}
