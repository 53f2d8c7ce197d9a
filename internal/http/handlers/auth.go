package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	InitData     string `json:"init_data"`
	ReferralCode string `json:"referral_code,omitempty"`
}

func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// DEV MODE: пропускаем валидацию
	if os.Getenv("DEV_MODE") == "true" {
		var tgID int64 = 12345

		if strings.Contains(req.InitData, "\"id\":") {
			start := strings.Index(req.InitData, "\"id\":") + 5
			end := start
			for end < len(req.InitData) && req.InitData[end] >= '0' && req.InitData[end] <= '9' {
				end++
			}
			if parsed, err := strconv.ParseInt(req.InitData[start:end], 10, 64); err == nil {
				tgID = parsed
			}
		}

		h.finishAuth(c, tgID, fmt.Sprintf("testminer%d", tgID), "Test", req.ReferralCode)
		return
	}

	// Обычная валидация для прода
	if len(req.InitData) > 4096 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "init_data too long"})
		return
	}

	values, ok := service.ValidateTelegramInitData(req.InitData, h.BotToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or stale telegram data"})
		return
	}

	userRaw := values.Get("user")
	if userRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}

	userValues, _ := url.ParseQuery("user=" + userRaw)
	userJSON := userValues.Get("user")

	var tgUser struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
	}

	if err := json.Unmarshal([]byte(userJSON), &tgUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user json"})
		return
	}

	h.finishAuth(c, tgUser.ID, tgUser.Username, tgUser.FirstName, req.ReferralCode)
}

// finishAuth loads or creates the account, binds a referral code when a
// fresh account arrives with one, and issues the session token.
func (h *Handler) finishAuth(c *gin.Context, tgID int64, username, firstName, refCode string) {
	ctx := c.Request.Context()

	acct, err := h.Accounts.GetByTgID(ctx, tgID)
	if err != nil {
		acct = &domain.Account{
			TgID:      tgID,
			Username:  username,
			FirstName: firstName,
		}
		if err := h.Accounts.Create(ctx, acct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
			return
		}

		// Referral binding is best-effort: a bad or self code must not
		// block signup.
		if refCode != "" {
			if referrerID, err := h.Referrals.AccountIDByCode(ctx, refCode); err == nil && referrerID != acct.ID {
				_ = h.Referrals.Link(ctx, referrerID, acct.ID)
			}
		}
	}

	token, err := service.GenerateJWT(acct.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"account": gin.H{
			"id":         acct.ID,
			"tg_id":      acct.TgID,
			"username":   acct.Username,
			"first_name": acct.FirstName,
			"coins":      acct.Coins,
			"tokens":     domain.FormatTokens(acct.Tokens),
			"level":      acct.Level,
		},
	})
}
