package service

import (
	"errors"
	"fmt"
	"log"

	"rently/internal/domain"
	"rently/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// WalletService owns the transaction ledger and the cached wallet balance.
// Every balance change goes through one of the atomic operations below, so
// wallet_balance_cents stays equal to the signed sum of the user's
// COMPLETED entries. AdjustWallet is the one deliberate exception.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// CreateTransaction appends a COMPLETED ledger entry without touching the
// wallet. Used to log order-related charges settled out of band.
func (s *WalletService) CreateTransaction(userID uint, txType string, amountCents int64, description, paymentMethod string, orderID *uint) (*models.Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	t := &models.Transaction{
		UserID:        userID,
		Type:          txType,
		AmountCents:   amountCents,
		Description:   description,
		PaymentMethod: paymentMethod,
		OrderID:       orderID,
		Reference:     fmt.Sprintf("tx-%s", uuid.New().String()),
		Status:        domain.TxStatusCompleted,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// RequestWithdrawal appends a PENDING withdrawal entry. The wallet is only
// debited later, when the withdrawal is processed.
func (s *WalletService) RequestWithdrawal(userID uint, amountCents int64, bankDetails string) (*models.Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	t := &models.Transaction{
		UserID:      userID,
		Type:        domain.TxTypeWithdrawal,
		AmountCents: amountCents,
		Description: "Withdrawal request",
		BankDetails: bankDetails,
		Reference:   fmt.Sprintf("wd-%s", uuid.New().String()),
		Status:      domain.TxStatusPending,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, err
	}
	log.Printf("[Wallet] withdrawal %d requested: user=%d amount=%d", t.ID, userID, amountCents)
	return t, nil
}

// ProcessWithdrawal settles a pending withdrawal: debits the wallet and
// flips the entry to COMPLETED in one transaction. An unknown id, or an
// entry that was already processed, reports record-not-found and leaves
// the balance alone.
func (s *WalletService) ProcessWithdrawal(txID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND type = ? AND status = ?",
			txID, domain.TxTypeWithdrawal, domain.TxStatusPending).
			First(&t).Error
		if err != nil {
			return err
		}
		if err := debitBalance(tx, t.UserID, t.AmountCents); err != nil {
			return err
		}
		// conditional flip: if a concurrent call settled the entry after
		// our read, roll the debit back instead of applying it twice
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", t.ID, domain.TxStatusPending).
			Update("status", domain.TxStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		t.Status = domain.TxStatusCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[Wallet] withdrawal %d processed: user=%d amount=%d", t.ID, t.UserID, t.AmountCents)
	return &t, nil
}

// TransferFunds moves money between two wallets as two ledger legs: a
// DEBIT on the sender and a CREDIT on the receiver, both COMPLETED, plus
// the matching balance updates. All four writes commit or none do.
// Returns the debit leg.
func (s *WalletService) TransferFunds(fromUserID, toUserID uint, amountCents int64, description string) (*models.Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	ref := uuid.New().String()
	debit := &models.Transaction{
		UserID:      fromUserID,
		Type:        domain.TxTypeDebit,
		AmountCents: amountCents,
		Description: description,
		Reference:   fmt.Sprintf("tf-%s-out", ref),
		Status:      domain.TxStatusCompleted,
	}
	credit := &models.Transaction{
		UserID:      toUserID,
		Type:        domain.TxTypeCredit,
		AmountCents: amountCents,
		Description: description,
		Reference:   fmt.Sprintf("tf-%s-in", ref),
		Status:      domain.TxStatusCompleted,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(debit).Error; err != nil {
			return err
		}
		if err := debitBalance(tx, fromUserID, amountCents); err != nil {
			return err
		}
		if err := tx.Create(credit).Error; err != nil {
			return err
		}
		return creditBalance(tx, toUserID, amountCents)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[Wallet] transfer %d cents: %d -> %d", amountCents, fromUserID, toUserID)
	return debit, nil
}

// AdjustWallet applies a signed delta straight to the balance with no
// ledger entry. Administrative escape hatch: it intentionally breaks the
// balance-equals-ledger-sum property, so keep it out of normal flows.
func (s *WalletService) AdjustWallet(userID uint, deltaCents int64) (*models.User, error) {
	if err := creditBalance(s.db, userID, deltaCents); err != nil {
		return nil, err
	}
	log.Printf("[Wallet] manual adjustment: user=%d delta=%d", userID, deltaCents)
	return s.GetUser(userID)
}

func (s *WalletService) GetUser(userID uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func creditBalance(tx *gorm.DB, userID uint, amountCents int64) error {
	res := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("wallet_balance_cents", gorm.Expr("wallet_balance_cents + ?", amountCents))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func debitBalance(tx *gorm.DB, userID uint, amountCents int64) error {
	return creditBalance(tx, userID, -amountCents)
}
