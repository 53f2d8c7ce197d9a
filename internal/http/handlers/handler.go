package handlers

import (
	"errors"
	"net/http"

	"whalebux_backend/internal/repository"
	"whalebux_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerConfig carries the tunables the progression engine needs.
type HandlerConfig struct {
	MiningFloorSeconds int64
	XPPerCoin          int64
}

type Handler struct {
	DB       *pgxpool.Pool
	BotToken string

	Accounts     *repository.AccountRepository
	Referrals    *repository.ReferralRepository
	Transactions *repository.TransactionRepository

	Mining     *service.MiningService
	Upgrades   *service.UpgradeService
	Logins     *service.LoginService
	Milestones *service.ReferralService
	VIP        *service.VIPService
}

func NewHandler(db *pgxpool.Pool, botToken string) *Handler {
	return NewHandlerWithConfig(db, botToken, HandlerConfig{})
}

// NewHandlerWithConfig creates a handler with custom engine tunables
func NewHandlerWithConfig(db *pgxpool.Pool, botToken string, cfg HandlerConfig) *Handler {
	return &Handler{
		DB:           db,
		BotToken:     botToken,
		Accounts:     repository.NewAccountRepository(db),
		Referrals:    repository.NewReferralRepository(db),
		Transactions: repository.NewTransactionRepository(db),
		Mining:       service.NewMiningService(db, cfg.MiningFloorSeconds, cfg.XPPerCoin),
		Upgrades:     service.NewUpgradeService(db),
		Logins:       service.NewLoginService(db),
		Milestones:   service.NewReferralService(db),
		VIP:          service.NewVIPService(db),
	}
}

func getAccountID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("account_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// respondDomainError maps the engine's sentinel errors to inline 4xx
// JSON the UI can render; anything else is a store failure and stays a
// 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInsufficientFunds),
		errors.Is(err, service.ErrSequentialUpgrade),
		errors.Is(err, service.ErrSessionRunning),
		errors.Is(err, service.ErrSessionCompleted),
		errors.Is(err, service.ErrNothingToClaim),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrMilestoneNotReached),
		errors.Is(err, service.ErrUnknownTrack),
		errors.Is(err, service.ErrUnknownTier),
		errors.Is(err, service.ErrUnknownMilestone),
		errors.Is(err, service.ErrUnknownVIPTier):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
