package service

import (
	"errors"
	"log"
	"time"

	"rently/internal/domain"
	"rently/internal/models"
	"rently/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder        = errors.New("order requires at least one item")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// CheckoutItem is one requested line of a cart-to-order conversion.
type CheckoutItem struct {
	ProductID       uint       `json:"product_id" binding:"required"`
	Quantity        int        `json:"quantity" binding:"required,min=1"`
	RentalStartDate *time.Time `json:"rental_start_date"`
	RentalEndDate   *time.Time `json:"rental_end_date"`
}

// OrderService converts carts into orders and keeps the derived order
// status in sync with item statuses.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateFromCart prices the requested items against the user's current
// cart, creates the order with all items in Pending Approval, bumps each
// product's rental counter, and clears the whole cart. A requested product
// with no cart entry contributes nothing to the total but is still
// included in the order. Everything commits as one unit.
func (s *OrderService) CreateFromCart(userID uint, items []CheckoutItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		var total int64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			var ci models.CartItem
			err := tx.Preload("Product").
				Where("user_id = ? AND product_id = ?", userID, it.ProductID).
				First(&ci).Error
			switch {
			case err == nil:
				// price from the cart's product snapshot, not the payload
				total += ci.Product.RentalPriceCents * int64(it.Quantity)
			case errors.Is(err, gorm.ErrRecordNotFound):
				// not in the cart: contributes zero, order still accepts it
			default:
				return err
			}
			orderItems = append(orderItems, models.OrderItem{
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				Status:          domain.ItemStatusPendingApproval,
				RentalStartDate: it.RentalStartDate,
				RentalEndDate:   it.RentalEndDate,
			})
		}
		order = &models.Order{
			UserID:     userID,
			UserName:   user.Name,
			TotalCents: total,
			Status:     domain.OrderStatusProcessing,
			Items:      orderItems,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, it := range items {
			var p models.Product
			if err := repository.IncrementRentalCountTx(tx, it.ProductID, &p); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
		}
		// the entire cart goes, including rows the order never referenced
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[Order] created order %d for user %d: total=%d items=%d",
		order.ID, userID, order.TotalCents, len(order.Items))
	return order, nil
}

// UpdateItemStatus moves one item through the item state machine, then
// re-derives the order status from a full scan of its items: once every
// item has left Pending Approval the order is promoted to Completed.
// The re-scan makes repeated calls idempotent.
func (s *OrderService) UpdateItemStatus(orderID, itemID uint, newStatus string) (*models.Order, error) {
	if !domain.IsItemStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.OrderItem
		err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error
		if err != nil {
			return err
		}
		if !domain.CanTransitionItem(item.Status, newStatus) {
			return ErrIllegalTransition
		}
		if err := tx.Model(&item).Update("status", newStatus).Error; err != nil {
			return err
		}
		var siblings []models.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&siblings).Error; err != nil {
			return err
		}
		allDone := len(siblings) > 0
		for _, it := range siblings {
			if !domain.IsResolvedItemStatus(it.Status) {
				allDone = false
				break
			}
		}
		if allDone {
			err := tx.Model(&models.Order{}).Where("id = ?", orderID).
				Update("status", domain.OrderStatusCompleted).Error
			if err != nil {
				return err
			}
			log.Printf("[Order] order %d promoted to %s", orderID, domain.OrderStatusCompleted)
		}
		return tx.Preload("Items").First(&order, orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus is the administrative override; it bypasses the
// item-derived computation.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	if !domain.IsOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	var order models.Order
	if err := s.db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}

// DeleteOrder removes the order and its items. Ledger entries already
// written for the order are left alone; deletion is not a refund.
func (s *OrderService) DeleteOrder(orderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
	})
}
