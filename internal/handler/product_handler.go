package handler

import (
	"net/http"
	"strconv"

	"rently/internal/models"
	"rently/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productRepo *repository.ProductRepository
}

func NewProductHandler(productRepo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		OwnerID          uint              `json:"owner_id" binding:"required"`
		Name             string            `json:"name" binding:"required"`
		Description      string            `json:"description"`
		Category         string            `json:"category"`
		RentalPriceCents int64             `json:"rental_price_cents" binding:"required,min=1"`
		SalePriceCents   int64             `json:"sale_price_cents"`
		AvailableSizes   models.StringList `json:"available_sizes"`
		Images           models.StringList `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Product{
		OwnerID:          req.OwnerID,
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		RentalPriceCents: req.RentalPriceCents,
		SalePriceCents:   req.SalePriceCents,
		AvailableSizes:   req.AvailableSizes,
		Images:           req.Images,
	}
	if err := h.productRepo.Create(p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.productRepo.GetByID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.productRepo.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req struct {
		Name             *string            `json:"name"`
		Description      *string            `json:"description"`
		Category         *string            `json:"category"`
		RentalPriceCents *int64             `json:"rental_price_cents"`
		SalePriceCents   *int64             `json:"sale_price_cents"`
		AvailableSizes   *models.StringList `json:"available_sizes"`
		Images           *models.StringList `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.RentalPriceCents != nil {
		fields["rental_price_cents"] = *req.RentalPriceCents
	}
	if req.SalePriceCents != nil {
		fields["sale_price_cents"] = *req.SalePriceCents
	}
	if req.AvailableSizes != nil {
		fields["available_sizes"] = *req.AvailableSizes
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}
	p, err := h.productRepo.Updates(paramUint(c, "id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productRepo.Delete(paramUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RecordRental bumps the product's rental counter; at the threshold the
// product becomes eligible for outright sale.
func (h *ProductHandler) RecordRental(c *gin.Context) {
	p, err := h.productRepo.IncrementRentalCount(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           p.ID,
		"rental_count": p.RentalCount,
		"is_for_sale":  p.IsForSale,
	})
}
