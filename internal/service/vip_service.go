package service

import (
	"context"
	"errors"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnknownVIPTier = errors.New("unknown vip tier")

// VIPService sells memberships. A purchase always restarts the 30-day
// clock from now, whether it is a renewal, an upgrade or a downgrade.
type VIPService struct {
	db           *pgxpool.Pool
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
}

func NewVIPService(db *pgxpool.Pool) *VIPService {
	return &VIPService{
		db:           db,
		accounts:     repository.NewAccountRepository(db),
		transactions: repository.NewTransactionRepository(db),
	}
}

// VIPPurchaseResult reports the new membership and token balance.
type VIPPurchaseResult struct {
	Plan      econ.VIPPlan `json:"plan"`
	ExpiresAt time.Time    `json:"expires_at"`
	Tokens    int64        `json:"tokens"`
}

// Purchase debits the plan's token price and stores the membership.
func (s *VIPService) Purchase(ctx context.Context, accountID int64, tier int) (*VIPPurchaseResult, error) {
	plan, ok := econ.VIPPlanFor(tier)
	if !ok {
		return nil, ErrUnknownVIPTier
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 0, plan.DurationDays)

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID); err != nil {
		return nil, err
	}

	tokens, err := s.accounts.DebitTokensTx(ctx, tx, accountID, plan.TokenPrice)
	if err != nil {
		return nil, err
	}
	err = s.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
		AccountID: accountID,
		Type:      "vip_purchase",
		Currency:  domain.CurrencyTokens,
		Amount:    -plan.TokenPrice,
		Meta:      map[string]interface{}{"tier": tier, "expires_at": expiresAt},
	})
	if err != nil {
		return nil, err
	}
	if err := s.accounts.SetVIPTx(ctx, tx, accountID, tier, expiresAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &VIPPurchaseResult{Plan: plan, ExpiresAt: expiresAt, Tokens: tokens}, nil
}
