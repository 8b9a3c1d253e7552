package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"superstore-cli/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func seedTestProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()

	product := models.Product{
		ProductID:   "PROD-001",
		Category:    "Furniture",
		SubCategory: "Chairs",
		ProductName: "Executive Leather Chair",
		UnitPrice:   decimal.RequireFromString("299.99"),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedTestCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()

	customer := models.Customer{
		CustomerID:   "CUST-001",
		CustomerName: "Ada Meyer",
		Segment:      "Corporate",
		Country:      "United States",
		City:         "Portland",
		State:        "Oregon",
		PostalCode:   "97201",
		Region:       "West",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func validOrderInput(customerID, productID string) OrderInput {
	return OrderInput{
		OrderID:    "ORD-1001",
		OrderDate:  "2024-03-01",
		ShipDate:   "2024-03-05",
		ShipMode:   "Standard Class",
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   10,
	}
}

func TestCreateOrderWithExistingCustomer(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	summary, err := service.CreateOrder(validOrderInput(customer.CustomerID, product.ProductID))
	require.NoError(t, err)

	// quantity 10 at 299.99: 10% discount, 30% margin
	assert.Equal(t, "ORD-1001", summary.OrderID)
	assert.False(t, summary.NewCustomer)
	assert.Equal(t, "2999.90", summary.Subtotal.StringFixed(2))
	assert.Equal(t, "0.10", summary.DiscountRate.StringFixed(2))
	assert.Equal(t, "299.99", summary.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2699.91", summary.Sales.StringFixed(2))
	assert.Equal(t, "809.97", summary.Profit.StringFixed(2))

	var stored models.Order
	require.NoError(t, db.First(&stored, "order_id = ?", "ORD-1001").Error)
	assert.Equal(t, summary.Sales.StringFixed(2), stored.Sales.StringFixed(2),
		"summary must match what was persisted")
	assert.Equal(t, summary.Profit.StringFixed(2), stored.Profit.StringFixed(2))
}

func TestCreateOrderCreatesCustomerLazily(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	service := NewOrderService(db)

	input := validOrderInput("CUST-NEW", product.ProductID)
	input.NewCustomer = &NewCustomerInput{
		CustomerName: "Noor Haddad",
		Segment:      "Consumer",
		Country:      "United States",
		City:         "Austin",
		State:        "Texas",
		PostalCode:   "73301",
		Region:       "South",
	}

	summary, err := service.CreateOrder(input)
	require.NoError(t, err)
	assert.True(t, summary.NewCustomer)

	var customer models.Customer
	require.NoError(t, db.First(&customer, "customer_id = ?", "CUST-NEW").Error)
	assert.Equal(t, "Noor Haddad", customer.CustomerName)
	assert.Equal(t, "Consumer", customer.Segment)
}

func TestCreateOrderUnknownCustomerWithoutDetails(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	service := NewOrderService(db)

	_, err := service.CreateOrder(validOrderInput("CUST-MISSING", product.ProductID))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count, "no order row may be left behind")
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	_, err := service.CreateOrder(validOrderInput(customer.CustomerID, "PROD-MISSING"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "order entry must not create products implicitly")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderDuplicateIDRollsBackNewCustomer(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	_, err := service.CreateOrder(validOrderInput(customer.CustomerID, product.ProductID))
	require.NoError(t, err)

	// same order id again, this time with a brand new customer
	input := validOrderInput("CUST-ROLLBACK", product.ProductID)
	input.NewCustomer = &NewCustomerInput{
		CustomerName: "Iris Chen",
		Segment:      "Home Office",
		Country:      "United States",
		City:         "Denver",
		State:        "Colorado",
		PostalCode:   "80014",
		Region:       "West",
	}
	_, err = service.CreateOrder(input)
	require.Error(t, err)
	assert.True(t, IsIntegrity(err), "duplicate order id must surface as an integrity error, got %v", err)

	var customerCount int64
	db.Model(&models.Customer{}).Where("customer_id = ?", "CUST-ROLLBACK").Count(&customerCount)
	assert.Equal(t, int64(0), customerCount, "new customer must be rolled back with the failed order")

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	tests := []struct {
		name   string
		mutate func(*OrderInput)
	}{
		{"bad order date", func(i *OrderInput) { i.OrderDate = "03/01/2024" }},
		{"bad ship date", func(i *OrderInput) { i.ShipDate = "not-a-date" }},
		{"unknown ship mode", func(i *OrderInput) { i.ShipMode = "Carrier Pigeon" }},
		{"zero quantity", func(i *OrderInput) { i.Quantity = 0 }},
		{"negative quantity", func(i *OrderInput) { i.Quantity = -1 }},
		{"empty customer id", func(i *OrderInput) { i.CustomerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOrderInput(customer.CustomerID, product.ProductID)
			tt.mutate(&input)
			_, err := service.CreateOrder(input)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected inputs must leave the orders table unchanged")
}

func TestCreateOrderGeneratesBlankID(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	input := validOrderInput(customer.CustomerID, product.ProductID)
	input.OrderID = ""

	summary, err := service.CreateOrder(input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(summary.OrderID, "ORD-"), "generated id %q", summary.OrderID)
	assert.Len(t, summary.OrderID, len("ORD-")+8)

	var stored models.Order
	require.NoError(t, db.First(&stored, "order_id = ?", summary.OrderID).Error)
}

func TestCreateOrderInvalidNewCustomerEnums(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	service := NewOrderService(db)

	tests := []struct {
		name    string
		segment string
		region  string
	}{
		{"free-text segment", "Enterprise", "West"},
		{"free-text region", "Consumer", "Northwest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOrderInput("CUST-ENUM", product.ProductID)
			input.NewCustomer = &NewCustomerInput{
				CustomerName: "Sam Ortiz",
				Segment:      tt.segment,
				Region:       tt.region,
			}
			_, err := service.CreateOrder(input)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var count int64
			db.Model(&models.Customer{}).Count(&count)
			assert.Equal(t, int64(0), count, "invalid customer must not be persisted")
		})
	}
}

func TestGetOrderPreloadsDimensions(t *testing.T) {
	db := setupTestDB(t)
	product := seedTestProduct(t, db)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	_, err := service.CreateOrder(validOrderInput(customer.CustomerID, product.ProductID))
	require.NoError(t, err)

	order, err := service.GetOrder("ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, customer.CustomerName, order.Customer.CustomerName)
	assert.Equal(t, product.ProductName, order.Product.ProductName)

	// repeated reads of an unmodified order return identical values
	again, err := service.GetOrder("ORD-1001")
	require.NoError(t, err)
	assert.Equal(t, order.Quantity, again.Quantity)
	assert.Equal(t, order.Sales.StringFixed(2), again.Sales.StringFixed(2))
	assert.Equal(t, order.Profit.StringFixed(2), again.Profit.StringFixed(2))
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(db)

	_, err := service.GetOrder("ORD-NONE")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCustomerExists(t *testing.T) {
	db := setupTestDB(t)
	customer := seedTestCustomer(t, db)
	service := NewOrderService(db)

	exists, err := service.CustomerExists(customer.CustomerID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.CustomerExists("CUST-UNSEEN")
	require.NoError(t, err)
	assert.False(t, exists)
}
