package models

import "time"

// CartItem holds at most one row per (user, product); adding the same
// product again increments quantity in place.
type CartItem struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID       uint       `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity        int        `gorm:"not null" json:"quantity"`
	RentalStartDate *time.Time `json:"rental_start_date"`
	RentalEndDate   *time.Time `json:"rental_end_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
