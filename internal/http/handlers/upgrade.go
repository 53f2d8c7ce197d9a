package handlers

import (
	"net/http"

	"whalebux_backend/internal/econ"

	"github.com/gin-gonic/gin"
)

// UpgradeCatalog returns all three tracks with per-tier costs and the
// account's current level on each, so the UI can mark what is buyable.
func (h *Handler) UpgradeCatalog(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"tracks": gin.H{
			string(econ.TrackRate): gin.H{
				"level": acct.RateLevel,
				"tiers": econ.RateUpgrades,
			},
			string(econ.TrackBoost): gin.H{
				"level": acct.BoostLevel,
				"tiers": econ.BoostUpgrades,
			},
			string(econ.TrackTime): gin.H{
				"level": acct.TimeLevel,
				"tiers": econ.TimeUpgrades,
			},
		},
	})
}

type PurchaseUpgradeRequest struct {
	Track string `json:"track"`
	Tier  int    `json:"tier"`
}

// PurchaseUpgrade buys one tier on a track.
func (h *Handler) PurchaseUpgrade(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req PurchaseUpgradeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	result, err := h.Upgrades.Purchase(c.Request.Context(), accountID, econ.UpgradeTrack(req.Track), req.Tier)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
