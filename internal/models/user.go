package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"size:128;not null" json:"name"`
	Email              string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone              string         `gorm:"size:20" json:"phone"`
	Address            string         `gorm:"size:255" json:"address"`
	WalletBalanceCents int64          `gorm:"not null;default:0" json:"wallet_balance_cents"` // cache over completed transactions
	VerificationDocs   StringList     `gorm:"type:text" json:"verification_docs"`
	SearchHistory      StringList     `gorm:"type:text" json:"search_history"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
