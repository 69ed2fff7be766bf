package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rv *models.Review) error {
	return r.db.Create(rv).Error
}

func (r *ReviewRepository) ListByProductID(productID uint) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReviewRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
