package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is a ledger entry: one money-movement event for one user.
// Entries are append-only; only Status is ever updated after creation.
// AmountCents is always positive, the Type carries the sign.
type Transaction struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Type          string         `gorm:"size:20;not null;index" json:"type"` // CREDIT, DEBIT, WITHDRAWAL
	AmountCents   int64          `gorm:"not null" json:"amount_cents"`
	Description   string         `gorm:"size:255" json:"description"`
	PaymentMethod string         `gorm:"size:64" json:"payment_method"`
	BankDetails   string         `gorm:"size:255" json:"bank_details"` // withdrawals only
	Reference     string         `gorm:"size:64;uniqueIndex" json:"reference"`
	OrderID       *uint          `gorm:"index" json:"order_id"`
	Status        string         `gorm:"size:20;not null;index" json:"status"` // PENDING, COMPLETED, FAILED
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
