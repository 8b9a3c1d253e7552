package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a sale of one product to one customer. Discount, sales and
// profit are derived from quantity and the product's unit price at creation
// time, never accepted as direct input.
type Order struct {
	OrderID    string          `gorm:"primaryKey;type:varchar(20)" json:"order_id"`
	OrderDate  time.Time       `gorm:"not null" json:"order_date"`
	ShipDate   time.Time       `gorm:"not null" json:"ship_date"`
	ShipMode   string          `gorm:"type:varchar(20);not null" json:"ship_mode"`
	CustomerID string          `gorm:"type:varchar(20);not null;index" json:"customer_id"`
	Customer   Customer        `json:"customer"`
	ProductID  string          `gorm:"type:varchar(20);not null;index" json:"product_id"`
	Product    Product         `json:"product"`
	Quantity   int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	Sales      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sales"`
	Profit     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"profit"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ShipModes is the fixed set of shipping service tiers
var ShipModes = []string{"Standard Class", "Second Class", "First Class", "Same Day"}

// ValidShipMode reports whether the ship mode is one of the fixed set
func ValidShipMode(shipMode string) bool {
	return contains(ShipModes, shipMode)
}

// DateLayout is the wire format for order and ship dates
const DateLayout = "2006-01-02"
