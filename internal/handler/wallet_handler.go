package handler

import (
	"net/http"

	"rently/internal/service"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletSvc *service.WalletService
}

func NewWalletHandler(walletSvc *service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance returns the cached wallet balance for a user.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	u, err := h.walletSvc.GetUser(paramUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":              u.ID,
		"wallet_balance_cents": u.WalletBalanceCents,
	})
}

// Adjust applies a signed delta straight to the balance, bypassing the
// ledger. Administrative use only.
func (h *WalletHandler) Adjust(c *gin.Context) {
	var req struct {
		DeltaCents *int64 `json:"delta_cents" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.walletSvc.AdjustWallet(paramUint(c, "id"), *req.DeltaCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":              u.ID,
		"wallet_balance_cents": u.WalletBalanceCents,
	})
}
