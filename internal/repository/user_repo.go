package repository

import (
	"rently/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(limit, offset int) ([]models.User, error) {
	var list []models.User
	err := r.db.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *UserRepository) Updates(id uint, fields map[string]interface{}) (*models.User, error) {
	u, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(u).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *UserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
