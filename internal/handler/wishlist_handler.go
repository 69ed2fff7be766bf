package handler

import (
	"net/http"

	"rently/internal/repository"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistRepo *repository.WishlistRepository
}

func NewWishlistHandler(wishlistRepo *repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlistRepo: wishlistRepo}
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.wishlistRepo.Add(paramUint(c, "id"), req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlistRepo.Remove(paramUint(c, "id"), paramUint(c, "product_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WishlistHandler) List(c *gin.Context) {
	list, err := h.wishlistRepo.ListByUserID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": list})
}
