package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"superstore-cli/models"
)

// OrderService orchestrates order creation: customer lookup-or-create, product
// lookup, financial derivation and the order insert, all in one transaction.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService bound to a store handle
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// NewCustomerInput carries the full attribute set required when an order
// references an unseen customer id.
type NewCustomerInput struct {
	CustomerName string
	Segment      string
	Country      string
	City         string
	State        string
	PostalCode   string
	Region       string
}

// OrderInput is the raw order-entry payload. Dates arrive as YYYY-MM-DD
// strings; discount, sales and profit are never part of the input.
type OrderInput struct {
	OrderID     string // blank means generate one
	OrderDate   string
	ShipDate    string
	ShipMode    string
	CustomerID  string
	NewCustomer *NewCustomerInput // required only when CustomerID is unseen
	ProductID   string
	Quantity    int
}

// OrderSummary reports the derived financials of a created order, matching
// exactly what was persisted.
type OrderSummary struct {
	OrderID        string
	CustomerID     string
	ProductID      string
	Quantity       int
	UnitPrice      decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	Sales          decimal.Decimal
	Profit         decimal.Decimal
	NewCustomer    bool
}

// CustomerExists reports whether a customer row exists for the id
func (s *OrderService) CustomerExists(customerID string) (bool, error) {
	var customer models.Customer
	err := s.db.First(&customer, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &StoreError{Op: "lookup customer", Err: err}
	}
	return true, nil
}

// CreateOrder runs the order-creation workflow. A new customer insert and the
// order insert share one transaction, so a failed order rolls the customer
// back too.
func (s *OrderService) CreateOrder(input OrderInput) (*OrderSummary, error) {
	orderDate, err := parseDate("order_date", input.OrderDate)
	if err != nil {
		return nil, err
	}
	shipDate, err := parseDate("ship_date", input.ShipDate)
	if err != nil {
		return nil, err
	}
	if !models.ValidShipMode(input.ShipMode) {
		return nil, &ValidationError{Field: "ship_mode", Reason: fmt.Sprintf("%q is not one of %s", input.ShipMode, strings.Join(models.ShipModes, ", "))}
	}
	if input.CustomerID == "" {
		return nil, &ValidationError{Field: "customer_id", Reason: "must not be empty"}
	}

	orderID := input.OrderID
	if orderID == "" {
		orderID = generateOrderID()
	}

	summary := &OrderSummary{
		OrderID:    orderID,
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		lookupErr := tx.First(&customer, "customer_id = ?", input.CustomerID).Error
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			if input.NewCustomer == nil {
				return &NotFoundError{Entity: "customer", ID: input.CustomerID}
			}
			created, createErr := createCustomer(tx, input.CustomerID, input.NewCustomer)
			if createErr != nil {
				return createErr
			}
			customer = *created
			summary.NewCustomer = true
		} else if lookupErr != nil {
			return &StoreError{Op: "lookup customer", Err: lookupErr}
		}

		var product models.Product
		lookupErr = tx.First(&product, "product_id = ?", input.ProductID).Error
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			// order entry never creates products implicitly
			return &NotFoundError{Entity: "product", ID: input.ProductID}
		}
		if lookupErr != nil {
			return &StoreError{Op: "lookup product", Err: lookupErr}
		}

		discount, sales, profit, calcErr := CalculateFinancials(input.Quantity, product.UnitPrice)
		if calcErr != nil {
			return calcErr
		}

		order := models.Order{
			OrderID:    orderID,
			OrderDate:  orderDate,
			ShipDate:   shipDate,
			ShipMode:   input.ShipMode,
			CustomerID: customer.CustomerID,
			ProductID:  product.ProductID,
			Quantity:   input.Quantity,
			Discount:   discount,
			Sales:      sales,
			Profit:     profit,
		}
		if createErr := tx.Create(&order).Error; createErr != nil {
			return classifyWriteError("insert order", createErr)
		}

		subtotal := decimal.NewFromInt(int64(input.Quantity)).Mul(product.UnitPrice)
		summary.UnitPrice = product.UnitPrice
		summary.Subtotal = subtotal
		summary.DiscountRate = discount
		summary.DiscountAmount = subtotal.Mul(discount).Round(2)
		summary.Sales = sales
		summary.Profit = profit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetOrder fetches an order with its customer and product rows
func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Customer").Preload("Product").First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "order", ID: orderID}
	}
	if err != nil {
		return nil, &StoreError{Op: "lookup order", Err: err}
	}
	return &order, nil
}

// createCustomer validates the enum fields and inserts the new customer row
// within the caller's transaction.
func createCustomer(tx *gorm.DB, customerID string, input *NewCustomerInput) (*models.Customer, error) {
	if !models.ValidSegment(input.Segment) {
		return nil, &ValidationError{Field: "segment", Reason: fmt.Sprintf("%q is not one of %s", input.Segment, strings.Join(models.Segments, ", "))}
	}
	if !models.ValidRegion(input.Region) {
		return nil, &ValidationError{Field: "region", Reason: fmt.Sprintf("%q is not one of %s", input.Region, strings.Join(models.Regions, ", "))}
	}

	customer := models.Customer{
		CustomerID:   customerID,
		CustomerName: input.CustomerName,
		Segment:      input.Segment,
		Country:      input.Country,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Region:       input.Region,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, classifyWriteError("insert customer", err)
	}
	return &customer, nil
}

// generateOrderID produces an ORD-XXXXXXXX identifier for blank order ids
func generateOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// parseDate coerces a YYYY-MM-DD string into a time.Time
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}
