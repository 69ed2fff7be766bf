package service_test

import (
	"errors"
	"testing"

	"rently/internal/domain"
	"rently/internal/models"
	"rently/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateFromCart_PricesFromCartAndClearsIt(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	u := seedUser(t, db, "Alice", "alice@example.com", 0)
	p := seedProduct(t, db, u.ID, "Tent", 10000)
	seedCartItem(t, db, u.ID, p.ID, 2)

	order, err := svc.CreateFromCart(u.ID, []service.CheckoutItem{
		{ProductID: p.ID, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), order.TotalCents)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, "Alice", order.UserName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, domain.ItemStatusPendingApproval, order.Items[0].Status)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", u.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount, "checkout must empty the cart")
}

func TestCreateFromCart_MissingCartEntryContributesZero(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	u := seedUser(t, db, "Alice", "alice@example.com", 0)
	p := seedProduct(t, db, u.ID, "Tent", 10000)
	ghost := seedProduct(t, db, u.ID, "Kayak", 99900)
	seedCartItem(t, db, u.ID, p.ID, 1)

	order, err := svc.CreateFromCart(u.ID, []service.CheckoutItem{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: ghost.ID, Quantity: 3}, // never added to cart
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), order.TotalCents, "uncarted item contributes zero")
	assert.Len(t, order.Items, 2, "uncarted item is still part of the order")
}

func TestCreateFromCart_ClearsUnreferencedCartRows(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	u := seedUser(t, db, "Alice", "alice@example.com", 0)
	p1 := seedProduct(t, db, u.ID, "Tent", 10000)
	p2 := seedProduct(t, db, u.ID, "Stove", 5000)
	seedCartItem(t, db, u.ID, p1.ID, 1)
	seedCartItem(t, db, u.ID, p2.ID, 1)

	_, err := svc.CreateFromCart(u.ID, []service.CheckoutItem{
		{ProductID: p1.ID, Quantity: 1},
	})
	require.NoError(t, err)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", u.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount, "the whole cart goes, referenced or not")
}

func TestCreateFromCart_EmptyItems(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	u := seedUser(t, db, "Alice", "alice@example.com", 0)

	_, err := svc.CreateFromCart(u.ID, nil)
	assert.ErrorIs(t, err, service.ErrEmptyOrder)
}

func TestCreateFromCart_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)

	_, err := svc.CreateFromCart(9999, []service.CheckoutItem{{ProductID: 1, Quantity: 1}})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateFromCart_BumpsRentalCount(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	u := seedUser(t, db, "Alice", "alice@example.com", 0)
	p := seedProduct(t, db, u.ID, "Tent", 10000)
	seedCartItem(t, db, u.ID, p.ID, 1)

	_, err := svc.CreateFromCart(u.ID, []service.CheckoutItem{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	assert.Equal(t, 1, fresh.RentalCount)
}

func createTwoItemOrder(t *testing.T, db *gorm.DB, svc *service.OrderService) *models.Order {
	t.Helper()
	u := seedUser(t, db, "Alice", "alice@example.com", 0)
	p1 := seedProduct(t, db, u.ID, "Tent", 10000)
	p2 := seedProduct(t, db, u.ID, "Stove", 5000)
	seedCartItem(t, db, u.ID, p1.ID, 1)
	seedCartItem(t, db, u.ID, p2.ID, 1)
	order, err := svc.CreateFromCart(u.ID, []service.CheckoutItem{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	return order
}

func TestUpdateItemStatus_PromotesWhenAllTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)
	first, second := order.Items[0], order.Items[1]

	// walk the first item to Completed
	for _, status := range []string{
		domain.ItemStatusAccepted, domain.ItemStatusShipped, domain.ItemStatusCompleted,
	} {
		updated, err := svc.UpdateItemStatus(order.ID, first.ID, status)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusProcessing, updated.Status,
			"order must not complete while an item is still pending")
	}

	// reject the second: now every item is terminal
	updated, err := svc.UpdateItemStatus(order.ID, second.ID, domain.ItemStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
}

func TestUpdateItemStatus_PromotesWhenAllAccepted(t *testing.T) {
	// Accepted and Shipped can still move through the graph, but they
	// already count as resolved for order-level aggregation
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	updated, err := svc.UpdateItemStatus(order.ID, order.Items[0].ID, domain.ItemStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, updated.Status,
		"one item still pending approval")

	updated, err = svc.UpdateItemStatus(order.ID, order.Items[1].ID, domain.ItemStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status,
		"every item past pending approval completes the order")
}

func TestUpdateItemStatus_ShippedCountsAsResolved(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	_, err := svc.UpdateItemStatus(order.ID, order.Items[0].ID, domain.ItemStatusAccepted)
	require.NoError(t, err)
	_, err = svc.UpdateItemStatus(order.ID, order.Items[0].ID, domain.ItemStatusShipped)
	require.NoError(t, err)
	updated, err := svc.UpdateItemStatus(order.ID, order.Items[1].ID, domain.ItemStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)
}

func TestUpdateItemStatus_RejectsIllegalTransition(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	_, err := svc.UpdateItemStatus(order.ID, order.Items[0].ID, domain.ItemStatusCompleted)
	assert.ErrorIs(t, err, service.ErrIllegalTransition)

	_, err = svc.UpdateItemStatus(order.ID, order.Items[0].ID, "Lost In Transit")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestUpdateItemStatus_UnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	_, err := svc.UpdateItemStatus(order.ID, 9999, domain.ItemStatusAccepted)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateOrderStatus_AdministrativeOverride(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	updated, err := svc.UpdateOrderStatus(order.ID, domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)

	_, err = svc.UpdateOrderStatus(order.ID, "Archived")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus(9999, domain.OrderStatusCompleted)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteOrder_CascadesToItems(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewOrderService(db)
	order := createTwoItemOrder(t, db, svc)

	require.NoError(t, svc.DeleteOrder(order.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	err := svc.DeleteOrder(order.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
