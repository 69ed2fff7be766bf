package handler

import (
	"net/http"
	"strconv"

	"rently/internal/repository"
	"rently/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderSvc  *service.OrderService
	orderRepo *repository.OrderRepository
}

func NewOrderHandler(orderSvc *service.OrderService, orderRepo *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, orderRepo: orderRepo}
}

// Create converts the user's cart into an order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		UserID uint                   `json:"user_id" binding:"required"`
		Items  []service.CheckoutItem `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.CreateFromCart(req.UserID, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderRepo.GetByID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.orderRepo.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	list, err := h.orderRepo.ListByUserID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// UpdateStatus is the administrative order-level override.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.UpdateOrderStatus(paramUint(c, "id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateItemStatus moves one item and re-derives the order status.
func (h *OrderHandler) UpdateItemStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.UpdateItemStatus(paramUint(c, "id"), paramUint(c, "item_id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderSvc.DeleteOrder(paramUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
