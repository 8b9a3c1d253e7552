package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"superstore-cli/models"
)

// QueryService produces the read shapes used for display and export
type QueryService struct {
	db *gorm.DB
}

// NewQueryService creates a QueryService bound to a store handle
func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{db: db}
}

// OrderDetail is one row of the orders view: the order joined with its
// customer and product dimensions.
type OrderDetail struct {
	OrderID      string          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	ShipDate     time.Time       `json:"ship_date"`
	ShipMode     string          `json:"ship_mode"`
	CustomerName string          `json:"customer_name"`
	Segment      string          `json:"segment"`
	Country      string          `json:"country"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	SubCategory  string          `json:"sub_category"`
	Quantity     int             `json:"quantity"`
	Discount     decimal.Decimal `json:"discount"`
	Sales        decimal.Decimal `json:"sales"`
	Profit       decimal.Decimal `json:"profit"`
}

// ListOrderDetails returns every order joined with customer and product data
func (s *QueryService) ListOrderDetails() ([]OrderDetail, error) {
	var rows []OrderDetail
	err := s.db.Table("orders o").
		Select("o.order_id, o.order_date, o.ship_date, o.ship_mode, " +
			"c.customer_name, c.segment, c.country, c.city, c.state, " +
			"p.product_name, p.category, p.sub_category, " +
			"o.quantity, o.discount, o.sales, o.profit").
		Joins("JOIN customers c ON o.customer_id = c.customer_id").
		Joins("JOIN products p ON o.product_id = p.product_id").
		Order("o.order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, &StoreError{Op: "list orders", Err: err}
	}
	return rows, nil
}

// ListCustomers returns all customer rows
func (s *QueryService) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("customer_id").Find(&customers).Error; err != nil {
		return nil, &StoreError{Op: "list customers", Err: err}
	}
	return customers, nil
}

// ListProducts returns all product rows
func (s *QueryService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("product_id").Find(&products).Error; err != nil {
		return nil, &StoreError{Op: "list products", Err: err}
	}
	return products, nil
}
