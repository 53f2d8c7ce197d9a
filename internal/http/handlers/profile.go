package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Profile is the public view of an account: progression only, no
// balances beyond what the leaderboard already exposes.
func (h *Handler) Profile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	acct, err := h.Accounts.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         acct.ID,
		"username":   acct.Username,
		"first_name": acct.FirstName,
		"level":      acct.Level,
		"coins":      acct.Coins,
		"vip_tier":   acct.EffectiveVIPTier(time.Now()),
		"created_at": acct.CreatedAt,
	})
}
