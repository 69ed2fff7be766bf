package repository

import (
	"rently/internal/domain"
	"rently/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(limit, offset int) ([]models.Product, error) {
	var list []models.Product
	err := r.db.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ProductRepository) ListByOwnerID(ownerID uint) ([]models.Product, error) {
	var list []models.Product
	err := r.db.Where("owner_id = ?", ownerID).Find(&list).Error
	return list, err
}

func (r *ProductRepository) Updates(id uint, fields map[string]interface{}) (*models.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(p).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *ProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementRentalCount bumps the rental counter and flips is_for_sale once
// the threshold is reached. Sale eligibility is never cleared here.
func (r *ProductRepository) IncrementRentalCount(id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return IncrementRentalCountTx(tx, id, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// IncrementRentalCountTx is the same bump inside an existing transaction,
// used by order checkout so counter updates commit with the order.
func IncrementRentalCountTx(tx *gorm.DB, id uint, out *models.Product) error {
	if err := tx.First(out, id).Error; err != nil {
		return err
	}
	out.RentalCount++
	fields := map[string]interface{}{"rental_count": out.RentalCount}
	if out.RentalCount >= domain.RentalSaleThreshold && !out.IsForSale {
		out.IsForSale = true
		fields["is_for_sale"] = true
	}
	return tx.Model(&models.Product{}).Where("id = ?", out.ID).Updates(fields).Error
}
