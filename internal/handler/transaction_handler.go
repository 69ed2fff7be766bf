package handler

import (
	"net/http"
	"strconv"

	"rently/internal/domain"
	"rently/internal/repository"
	"rently/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	walletSvc *service.WalletService
	txRepo    *repository.TransactionRepository
}

func NewTransactionHandler(walletSvc *service.WalletService, txRepo *repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{walletSvc: walletSvc, txRepo: txRepo}
}

func (h *TransactionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.txRepo.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

func (h *TransactionHandler) ListByUser(c *gin.Context) {
	list, err := h.txRepo.ListByUserID(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

// Create logs a completed ledger entry without moving money (used for
// displaying order-related charges settled elsewhere).
func (h *TransactionHandler) Create(c *gin.Context) {
	var req struct {
		UserID        uint   `json:"user_id" binding:"required"`
		Type          string `json:"type" binding:"required"`
		AmountCents   int64  `json:"amount_cents" binding:"required"`
		Description   string `json:"description"`
		PaymentMethod string `json:"payment_method"`
		OrderID       *uint  `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.IsTxType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown transaction type"})
		return
	}
	t, err := h.walletSvc.CreateTransaction(req.UserID, req.Type, req.AmountCents, req.Description, req.PaymentMethod, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.IsTxStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown transaction status"})
		return
	}
	t, err := h.txRepo.UpdateStatus(paramUint(c, "id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// RequestWithdrawal records a pending withdrawal; the wallet is debited
// when the withdrawal is processed.
func (h *TransactionHandler) RequestWithdrawal(c *gin.Context) {
	var req struct {
		UserID      uint   `json:"user_id" binding:"required"`
		AmountCents int64  `json:"amount_cents" binding:"required"`
		BankDetails string `json:"bank_details" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.walletSvc.RequestWithdrawal(req.UserID, req.AmountCents, req.BankDetails)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ProcessWithdrawal settles a pending withdrawal.
func (h *TransactionHandler) ProcessWithdrawal(c *gin.Context) {
	t, err := h.walletSvc.ProcessWithdrawal(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Transfer moves funds from one wallet to another; responds with the
// debit leg.
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req struct {
		FromUserID  uint   `json:"from_user_id" binding:"required"`
		ToUserID    uint   `json:"to_user_id" binding:"required"`
		AmountCents int64  `json:"amount_cents" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.walletSvc.TransferFunds(req.FromUserID, req.ToUserID, req.AmountCents, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
