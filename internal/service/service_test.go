package service_test

import (
	"testing"

	"rently/internal/database"
	"rently/internal/domain"
	"rently/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// single connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, balanceCents int64) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, WalletBalanceCents: balanceCents}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, ownerID uint, name string, rentalPriceCents int64) *models.Product {
	t.Helper()
	p := &models.Product{OwnerID: ownerID, Name: name, RentalPriceCents: rentalPriceCents}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCartItem(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) *models.CartItem {
	t.Helper()
	ci := &models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	require.NoError(t, db.Create(ci).Error)
	return ci
}

// ledgerSum returns the signed sum of COMPLETED entries for a user:
// credits count positive, debits and withdrawals negative.
func ledgerSum(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var entries []models.Transaction
	require.NoError(t, db.Where("user_id = ? AND status = ?", userID, domain.TxStatusCompleted).Find(&entries).Error)
	var sum int64
	for _, e := range entries {
		switch e.Type {
		case domain.TxTypeCredit:
			sum += e.AmountCents
		case domain.TxTypeDebit, domain.TxTypeWithdrawal:
			sum -= e.AmountCents
		}
	}
	return sum
}

func walletBalance(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var u models.User
	require.NoError(t, db.First(&u, userID).Error)
	return u.WalletBalanceCents
}
