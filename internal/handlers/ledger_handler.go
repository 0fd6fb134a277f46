package handlers

import (
	"net/http"

	"moving_ops/internal/models"
	"moving_ops/internal/services"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerService services.LedgerService
}

func NewLedgerHandler(ledgerService services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

type transactionRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Date        string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    string  `json:"category"`
}

func (h *LedgerHandler) Record(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.ledgerService.Record(c.Request.Context(), models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *LedgerHandler) List(c *gin.Context) {
	txs, err := h.ledgerService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *LedgerHandler) Delete(c *gin.Context) {
	if err := h.ledgerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LedgerHandler) Balance(c *gin.Context) {
	bal, err := h.ledgerService.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bal)
}
