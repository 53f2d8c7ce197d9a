package http

import (
	"time"

	"whalebux_backend/internal/config"
	"whalebux_backend/internal/http/handlers"
	"whalebux_backend/internal/http/middleware"
	"whalebux_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the full API surface. The returned hub must be
// started with hub.Run from main.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) *ws.Hub {
	h := handlers.NewHandlerWithConfig(db, cfg.BotToken, handlers.HandlerConfig{
		MiningFloorSeconds: cfg.MiningFloorSeconds,
		XPPerCoin:          cfg.XPPerCoin,
	})
	healthHandler := handlers.NewHealthHandler(db, middleware.RedisClient(), version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authRateWindow := time.Duration(cfg.AuthRateWindow) * time.Second
	actionRateWindow := time.Duration(cfg.ActionRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, cfg, authRateWindow, actionRateWindow)

	// WebSocket progress stream
	hub := ws.NewHub(h.Mining, time.Duration(cfg.WSPushSeconds)*time.Second)
	r.GET("/ws", ws.HandleWS(hub))

	return hub
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config, authRateWindow, actionRateWindow time.Duration) {
	auth := middleware.JWTAuth()
	actionRL := func(action string) gin.HandlerFunc {
		return middleware.ActionRateLimit(action, cfg.ActionRateLimit, actionRateWindow)
	}

	// Auth
	api.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow), h.Auth)

	// Account
	api.GET("/me", auth, h.Me)
	api.GET("/me/transactions", auth, h.MyTransactions)
	api.GET("/profile/:id", h.Profile)

	// Mining session
	mining := api.Group("/mining", auth)
	{
		mining.GET("/status", h.MiningStatus)
		mining.POST("/start", actionRL("mining_start"), h.StartMining)
		mining.POST("/claim", actionRL("mining_claim"), h.ClaimMining)
	}

	// Upgrade catalog
	upgrades := api.Group("/upgrades", auth)
	{
		upgrades.GET("", h.UpgradeCatalog)
		upgrades.POST("/purchase", actionRL("upgrade_purchase"), h.PurchaseUpgrade)
	}

	// Daily login calendar
	login := api.Group("/daily-login", auth)
	{
		login.GET("", h.LoginCalendar)
		login.POST("/check-in", h.LoginCheckIn)
		login.POST("/claim", actionRL("daily_claim"), h.ClaimDailyLogin)
	}

	// Referral system
	referral := api.Group("/referral", auth)
	{
		referral.GET("/code", h.MyReferralCode)
		referral.GET("/list", h.MyReferrals)
		referral.GET("/milestones", h.ReferralMilestones)
		referral.POST("/milestones/:id/claim", actionRL("milestone_claim"), h.ClaimReferralMilestone)
	}

	// VIP memberships
	vip := api.Group("/vip")
	{
		vip.GET("/plans", h.VIPPlans)
		vip.POST("/purchase", auth, actionRL("vip_purchase"), h.PurchaseVIP)
	}

	// Leaderboard
	api.GET("/leaderboard", h.GetLeaderboard)
	api.GET("/leaderboard/rank", auth, h.GetMyRank)
}
