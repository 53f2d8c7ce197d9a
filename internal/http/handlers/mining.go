package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartMining freezes the account's current parameters into a new
// session.
func (h *Handler) StartMining(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.Mining.Start(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// MiningStatus reports the live session (or an idle preview) without
// mutating anything.
func (h *Handler) MiningStatus(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.Mining.Status(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ClaimMining pays out a finished session.
func (h *Handler) ClaimMining(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.Mining.Claim(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
