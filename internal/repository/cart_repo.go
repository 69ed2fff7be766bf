package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem inserts a cart row, or bumps quantity in place when the (user,
// product) pair already exists. Single upsert so two concurrent adds
// cannot lose an increment.
func (r *CartRepository) AddItem(item *models.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
}

func (r *CartRepository) GetItem(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) ListByUserID(userID uint) ([]models.CartItem, error) {
	var list []models.CartItem
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

func (r *CartRepository) UpdateItem(userID, productID uint, fields map[string]interface{}) (*models.CartItem, error) {
	item, err := r.GetItem(userID, productID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(item).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetItem(userID, productID)
}

func (r *CartRepository) RemoveItem(userID, productID uint) error {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Clear removes every cart row for the user.
func (r *CartRepository) Clear(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
