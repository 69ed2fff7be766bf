package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(limit, offset int) ([]models.Order, error) {
	var list []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *OrderRepository) ListByUserID(userID uint) ([]models.Order, error) {
	var list []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&list).Error
	return list, err
}
