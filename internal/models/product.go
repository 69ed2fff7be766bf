package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	OwnerID          uint           `gorm:"not null;index" json:"owner_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Description      string         `gorm:"size:1024" json:"description"`
	Category         string         `gorm:"size:64;index" json:"category"`
	RentalPriceCents int64          `gorm:"not null" json:"rental_price_cents"`
	SalePriceCents   int64          `json:"sale_price_cents"`
	AvailableSizes   StringList     `gorm:"type:text" json:"available_sizes"`
	Images           StringList     `gorm:"type:text" json:"images"`
	IsForSale        bool           `gorm:"not null;default:false" json:"is_for_sale"` // sticky once set
	RentalCount      int            `gorm:"not null;default:0" json:"rental_count"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
