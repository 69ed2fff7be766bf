package models

import (
	"time"

	"gorm.io/gorm"
)

// Order owns its items; the order-level status is derived from item
// statuses and re-computed on every item update.
type Order struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	UserName   string         `gorm:"size:128" json:"user_name"` // denormalized at creation
	TotalCents int64          `gorm:"not null" json:"total_cents"`
	Status     string         `gorm:"size:20;not null;index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	OrderID         uint       `gorm:"not null;index" json:"order_id"`
	ProductID       uint       `gorm:"not null;index" json:"product_id"`
	Quantity        int        `gorm:"not null" json:"quantity"`
	Status          string     `gorm:"size:20;not null" json:"status"`
	RentalStartDate *time.Time `json:"rental_start_date"`
	RentalEndDate   *time.Time `json:"rental_end_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
