package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add is an idempotent upsert: re-wishlisting the same product is a no-op
// rather than a duplicate-key error.
func (r *WishlistRepository) Add(userID, productID uint) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
}

func (r *WishlistRepository) Remove(userID, productID uint) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WishlistRepository) ListByUserID(userID uint) ([]models.WishlistItem, error) {
	var list []models.WishlistItem
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&list).Error
	return list, err
}
