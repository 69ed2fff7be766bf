package handler

import (
	"net/http"

	"rently/internal/models"
	"rently/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewRepo *repository.ReviewRepository
}

func NewReviewHandler(reviewRepo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepo: reviewRepo}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		UserID  uint   `json:"user_id" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rv := &models.Review{
		UserID:    req.UserID,
		ProductID: paramUint(c, "id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.reviewRepo.Create(rv); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	list, err := h.reviewRepo.ListByProductID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewRepo.Delete(paramUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
