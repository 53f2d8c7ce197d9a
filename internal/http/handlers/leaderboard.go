package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top 100 accounts by coin balance.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	top, err := h.Accounts.TopByCoins(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": top,
		"metric":      "coins",
	})
}

// GetMyRank returns the caller's position on the coin leaderboard.
func (h *Handler) GetMyRank(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rank, coins, err := h.Accounts.RankByCoins(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"rank":  0,
			"coins": 0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rank":  rank,
		"coins": coins,
	})
}
