package services

import (
	"gorm.io/gorm"

	"superstore-cli/models"
)

// DeletionService removes orders, customers and products while preserving
// referential integrity: parents with dependent orders can only go away
// through an explicitly confirmed cascade.
type DeletionService struct {
	db *gorm.DB
}

// NewDeletionService creates a DeletionService bound to a store handle
func NewDeletionService(db *gorm.DB) *DeletionService {
	return &DeletionService{db: db}
}

// CascadeConfirm is asked before a cascading delete proceeds. It receives the
// number of dependent orders; returning false leaves every row untouched.
type CascadeConfirm func(orderCount int64) bool

// DeleteOrder removes a single order row
func (s *DeletionService) DeleteOrder(orderID string) error {
	result := s.db.Delete(&models.Order{}, "order_id = ?", orderID)
	if result.Error != nil {
		return &StoreError{Op: "delete order", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "order", ID: orderID}
	}
	return nil
}

// DeleteCustomer removes a customer. If dependent orders exist the confirm
// callback decides whether to cascade; the orders and the customer row are
// then deleted in one transaction. Returns the number of orders removed.
func (s *DeletionService) DeleteCustomer(customerID string, confirm CascadeConfirm) (int64, error) {
	return s.deleteParent("customer", "customer_id", customerID, &models.Customer{}, confirm)
}

// DeleteProduct removes a product with the same cascade rules as DeleteCustomer
func (s *DeletionService) DeleteProduct(productID string, confirm CascadeConfirm) (int64, error) {
	return s.deleteParent("product", "product_id", productID, &models.Product{}, confirm)
}

func (s *DeletionService) deleteParent(entity, fkColumn, id string, parent interface{}, confirm CascadeConfirm) (int64, error) {
	var orderCount int64
	if err := s.db.Model(&models.Order{}).Where(fkColumn+" = ?", id).Count(&orderCount).Error; err != nil {
		return 0, &StoreError{Op: "count dependent orders", Err: err}
	}

	if orderCount > 0 {
		if confirm == nil || !confirm(orderCount) {
			return 0, ErrDeletionDeclined
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if orderCount > 0 {
			if err := tx.Delete(&models.Order{}, fkColumn+" = ?", id).Error; err != nil {
				return &StoreError{Op: "delete dependent orders", Err: err}
			}
		}
		result := tx.Delete(parent, fkColumn+" = ?", id)
		if result.Error != nil {
			return classifyWriteError("delete "+entity, result.Error)
		}
		if result.RowsAffected == 0 {
			return &NotFoundError{Entity: entity, ID: id}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderCount, nil
}
