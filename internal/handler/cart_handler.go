package handler

import (
	"net/http"
	"time"

	"rently/internal/models"
	"rently/internal/repository"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartRepo *repository.CartRepository
}

func NewCartHandler(cartRepo *repository.CartRepository) *CartHandler {
	return &CartHandler{cartRepo: cartRepo}
}

func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.cartRepo.ListByUserID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var total int64
	for _, it := range items {
		total += it.Product.RentalPriceCents * int64(it.Quantity)
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total_cents": total})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID       uint       `json:"product_id" binding:"required"`
		Quantity        int        `json:"quantity" binding:"required,min=1"`
		RentalStartDate *time.Time `json:"rental_start_date"`
		RentalEndDate   *time.Time `json:"rental_end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := paramUint(c, "id")
	item := &models.CartItem{
		UserID:          userID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		RentalStartDate: req.RentalStartDate,
		RentalEndDate:   req.RentalEndDate,
	}
	if err := h.cartRepo.AddItem(item); err != nil {
		respondError(c, err)
		return
	}
	fresh, err := h.cartRepo.GetItem(userID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fresh)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity        *int       `json:"quantity"`
		RentalStartDate *time.Time `json:"rental_start_date"`
		RentalEndDate   *time.Time `json:"rental_end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		fields["quantity"] = *req.Quantity
	}
	if req.RentalStartDate != nil {
		fields["rental_start_date"] = *req.RentalStartDate
	}
	if req.RentalEndDate != nil {
		fields["rental_end_date"] = *req.RentalEndDate
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}
	item, err := h.cartRepo.UpdateItem(paramUint(c, "id"), paramUint(c, "product_id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.cartRepo.RemoveItem(paramUint(c, "id"), paramUint(c, "product_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartRepo.Clear(paramUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
