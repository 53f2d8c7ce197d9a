package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginCalendar returns the 28-day calendar without advancing it.
func (h *Handler) LoginCalendar(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.Logins.Status(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// LoginCheckIn advances the login cursor for today. Safe to call on
// every app open.
func (h *Handler) LoginCheckIn(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.Logins.CheckIn(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ClaimDailyLogin takes today's calendar reward.
func (h *Handler) ClaimDailyLogin(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.Logins.ClaimDaily(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
