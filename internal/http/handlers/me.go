package handlers

import (
	"net/http"
	"strconv"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"

	"github.com/gin-gonic/gin"
)

// Me returns the full account view: ledger, progression cursor and the
// effective mining parameters the next session would freeze.
func (h *Handler) Me(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	acct, err := h.Accounts.GetByID(c.Request.Context(), accountID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	now := time.Now()
	lvl := econ.Levels[acct.Level]
	params := econ.SessionParamsFor(acct.Level, acct.RateLevel, acct.BoostLevel, acct.TimeLevel, acct.EffectiveVIPTier(now), 0)

	c.JSON(http.StatusOK, gin.H{
		"id":         acct.ID,
		"tg_id":      acct.TgID,
		"username":   acct.Username,
		"first_name": acct.FirstName,
		"coins":      acct.Coins,
		"tokens":     domain.FormatTokens(acct.Tokens),
		"experience": acct.Experience,
		"level":      acct.Level,
		"level_progress": gin.H{
			"xp_min": lvl.XPMin,
			"xp_max": lvl.XPMax,
		},
		"upgrades": gin.H{
			"rate_level":  acct.RateLevel,
			"boost_level": acct.BoostLevel,
			"time_level":  acct.TimeLevel,
		},
		"vip": gin.H{
			"tier":       acct.EffectiveVIPTier(now),
			"expires_at": acct.VIPExpiresAt,
		},
		"mining_params": params,
		"created_at":    acct.CreatedAt,
	})
}

// MyTransactions returns the account's journal, newest first.
func (h *Handler) MyTransactions(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	txs, err := h.Transactions.GetByAccountID(c.Request.Context(), accountID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
