package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MyReferralCode returns (creating on first call) the account's invite
// code.
func (h *Handler) MyReferralCode(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	code, err := h.Referrals.GetOrCreateCode(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"referral_code": code})
}

// MyReferrals lists the accounts this account invited.
func (h *Handler) MyReferrals(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	refs, err := h.Referrals.ListByReferrer(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(refs),
		"referrals": refs,
	})
}

// ReferralMilestones returns the reward ladder with per-account
// progress.
func (h *Handler) ReferralMilestones(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ladder, count, err := h.Milestones.Milestones(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"referrals":  count,
		"milestones": ladder,
	})
}

// ClaimReferralMilestone takes a ladder reward once.
func (h *Handler) ClaimReferralMilestone(c *gin.Context) {
	accountID, ok := getAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	milestoneID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad milestone id"})
		return
	}

	result, err := h.Milestones.ClaimMilestone(c.Request.Context(), accountID, milestoneID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
