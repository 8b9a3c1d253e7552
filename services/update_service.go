package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"superstore-cli/models"
)

// UpdateService mutates single fields of existing records. Every operation is
// keyed by order id: updates to customer or product attributes resolve the
// linked dimension row through the order and mutate that row, so sibling
// orders sharing the customer or product see the change too.
type UpdateService struct {
	db *gorm.DB
}

// NewUpdateService creates an UpdateService bound to a store handle
func NewUpdateService(db *gorm.DB) *UpdateService {
	return &UpdateService{db: db}
}

// UpdateOrderField updates one of the order's own fields: ship_mode,
// order_date or ship_date. Enumerated and date values are re-validated the
// same way order entry validates them.
func (s *UpdateService) UpdateOrderField(orderID, field, value string) error {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}

	switch field {
	case "ship_mode":
		if !models.ValidShipMode(value) {
			return &ValidationError{Field: "ship_mode", Reason: fmt.Sprintf("%q is not one of %s", value, strings.Join(models.ShipModes, ", "))}
		}
		return s.applyUpdate("update order", s.db.Model(order).Update("ship_mode", value))
	case "order_date", "ship_date":
		t, parseErr := parseDate(field, value)
		if parseErr != nil {
			return parseErr
		}
		return s.applyUpdate("update order", s.db.Model(order).Update(field, t))
	default:
		return &ValidationError{Field: "field", Reason: fmt.Sprintf("%q is not an updatable order field", field)}
	}
}

// UpdateOrderProductRef repoints an order at a different product. The new
// product must already exist; order updates never create products.
func (s *UpdateService) UpdateOrderProductRef(orderID, productID string) error {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}
	var product models.Product
	lookupErr := s.db.First(&product, "product_id = ?", productID).Error
	if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: "product", ID: productID}
	}
	if lookupErr != nil {
		return &StoreError{Op: "lookup product", Err: lookupErr}
	}
	return s.applyUpdate("update order", s.db.Model(order).Update("product_id", productID))
}

// UpdateCustomerField updates an attribute of the customer linked to the
// order. Segment and region are re-validated against the fixed enumerations.
func (s *UpdateService) UpdateCustomerField(orderID, field, value string) error {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}

	switch field {
	case "segment":
		if !models.ValidSegment(value) {
			return &ValidationError{Field: "segment", Reason: fmt.Sprintf("%q is not one of %s", value, strings.Join(models.Segments, ", "))}
		}
	case "region":
		if !models.ValidRegion(value) {
			return &ValidationError{Field: "region", Reason: fmt.Sprintf("%q is not one of %s", value, strings.Join(models.Regions, ", "))}
		}
	case "customer_name", "country", "city", "state", "postal_code":
		// free text
	default:
		return &ValidationError{Field: "field", Reason: fmt.Sprintf("%q is not an updatable customer field", field)}
	}

	customer := models.Customer{CustomerID: order.CustomerID}
	return s.applyUpdate("update customer", s.db.Model(&customer).Update(field, value))
}

// UpdateProductName renames the product linked to the order
func (s *UpdateService) UpdateProductName(orderID, name string) error {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}
	product := models.Product{ProductID: order.ProductID}
	return s.applyUpdate("update product", s.db.Model(&product).Update("product_name", name))
}

// UpdateProductCategory reassigns the category and sub-category of the product
// linked to the order. The pair is validated against the fixed category map.
func (s *UpdateService) UpdateProductCategory(orderID, category, subCategory string) error {
	if !models.ValidCategory(category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not one of %s", category, strings.Join(models.CategoryNames(), ", "))}
	}
	if !models.ValidSubCategory(category, subCategory) {
		return &ValidationError{Field: "sub_category", Reason: fmt.Sprintf("%q is not a sub-category of %s", subCategory, category)}
	}

	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}
	product := models.Product{ProductID: order.ProductID}
	return s.applyUpdate("update product", s.db.Model(&product).Updates(map[string]interface{}{
		"category":     category,
		"sub_category": subCategory,
	}))
}

// UpdateOrderQuantity changes an order's quantity. With recompute set, the
// discount, sales and profit are re-derived from the new quantity and the
// linked product's unit price; without it only the quantity changes,
// leaving the stored financials stale.
func (s *UpdateService) UpdateOrderQuantity(orderID string, quantity int, recompute bool) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}

	if !recompute {
		return s.applyUpdate("update order", s.db.Model(order).Update("quantity", quantity))
	}

	var product models.Product
	lookupErr := s.db.First(&product, "product_id = ?", order.ProductID).Error
	if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: "product", ID: order.ProductID}
	}
	if lookupErr != nil {
		return &StoreError{Op: "lookup product", Err: lookupErr}
	}

	discount, sales, profit, calcErr := CalculateFinancials(quantity, product.UnitPrice)
	if calcErr != nil {
		return calcErr
	}
	return s.applyUpdate("update order", s.db.Model(order).Updates(map[string]interface{}{
		"quantity": quantity,
		"discount": discount,
		"sales":    sales,
		"profit":   profit,
	}))
}

// OverrideOrderFinancials writes a user-supplied value straight into a derived
// financial field (discount, sales or profit). This deliberately bypasses the
// calculator; the name keeps the bypass visible at the call site.
func (s *UpdateService) OverrideOrderFinancials(orderID, field string, value decimal.Decimal) error {
	switch field {
	case "discount", "sales", "profit":
	default:
		return &ValidationError{Field: "field", Reason: fmt.Sprintf("%q is not a financial field", field)}
	}
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return err
	}
	return s.applyUpdate("update order", s.db.Model(order).Update(field, value))
}

func (s *UpdateService) fetchOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "order", ID: orderID}
	}
	if err != nil {
		return nil, &StoreError{Op: "lookup order", Err: err}
	}
	return &order, nil
}

func (s *UpdateService) applyUpdate(op string, result *gorm.DB) error {
	if result.Error != nil {
		return classifyWriteError(op, result.Error)
	}
	return nil
}
