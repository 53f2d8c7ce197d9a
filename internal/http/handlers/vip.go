package handlers

import (
	"net/http"

	"whalebux_backend/internal/econ"

	"github.com/gin-gonic/gin"
)

// VIPPlans lists the membership catalog.
func (h *Handler) VIPPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": econ.VIPPlans})
}

type PurchaseVIPRequest struct {
	Tier int `json:"tier"`
}

// PurchaseVIP buys a membership, restarting the 30-day clock.
func (h *Handler) PurchaseVIP(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req PurchaseVIPRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	result, err := h.VIP.Purchase(c.Request.Context(), accountID, req.Tier)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
