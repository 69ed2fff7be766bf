package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) List(limit, offset int) ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *TransactionRepository) ListByUserID(userID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdateStatus flips the status field; everything else on a ledger entry is
// immutable after creation.
func (r *TransactionRepository) UpdateStatus(id uint, status string) (*models.Transaction, error) {
	t, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(t).Update("status", status).Error; err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}
