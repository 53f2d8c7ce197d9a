package service

import (
	"context"
	"errors"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSequentialUpgrade = errors.New("upgrades must be bought one tier at a time")
	ErrUnknownTrack      = errors.New("unknown upgrade track")
	ErrUnknownTier       = errors.New("unknown upgrade tier")
)

// UpgradeService sells catalog tiers. Purchases are strictly
// sequential per track; reward grants take a different path and do not
// go through here.
type UpgradeService struct {
	db           *pgxpool.Pool
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
}

func NewUpgradeService(db *pgxpool.Pool) *UpgradeService {
	return &UpgradeService{
		db:           db,
		accounts:     repository.NewAccountRepository(db),
		transactions: repository.NewTransactionRepository(db),
	}
}

// PurchaseResult reports the new track level and remaining balances.
type PurchaseResult struct {
	Track     econ.UpgradeTrack `json:"track"`
	NewLevel  int               `json:"new_level"`
	CoinCost  int64             `json:"coin_cost"`
	TokenCost int64             `json:"token_cost"`
	Coins     int64             `json:"coins"`
	Tokens    int64             `json:"tokens"`
}

func upgradeColumn(track econ.UpgradeTrack) (string, bool) {
	switch track {
	case econ.TrackRate:
		return "rate_level", true
	case econ.TrackBoost:
		return "boost_level", true
	case econ.TrackTime:
		return "time_level", true
	}
	return "", false
}

func trackLevel(a *domain.Account, track econ.UpgradeTrack) int {
	switch track {
	case econ.TrackRate:
		return a.RateLevel
	case econ.TrackBoost:
		return a.BoostLevel
	case econ.TrackTime:
		return a.TimeLevel
	}
	return 0
}

// Purchase buys targetTier on a track. targetTier must be exactly one
// above the current level - skipping ahead or re-buying is rejected,
// never clamped. Whatever cost fields the tier carries are all
// charged; a failed purchase leaves the ledger untouched.
func (s *UpgradeService) Purchase(ctx context.Context, accountID int64, track econ.UpgradeTrack, targetTier int) (*PurchaseResult, error) {
	column, ok := upgradeColumn(track)
	if !ok {
		return nil, ErrUnknownTrack
	}
	tier, ok := econ.TierFor(track, targetTier)
	if !ok {
		return nil, ErrUnknownTier
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	acct, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	if targetTier != trackLevel(acct, track)+1 {
		return nil, ErrSequentialUpgrade
	}

	// Check both balances before touching either, so there is no
	// partial debit when one currency is short.
	if acct.Coins < tier.CoinCost || acct.Tokens < tier.TokenCost {
		return nil, repository.ErrInsufficientFunds
	}

	coins, tokens := acct.Coins, acct.Tokens
	if tier.CoinCost > 0 {
		coins, err = s.accounts.DebitCoinsTx(ctx, tx, accountID, tier.CoinCost)
		if err != nil {
			return nil, err
		}
		err = s.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
			AccountID: accountID,
			Type:      "upgrade_purchase",
			Currency:  domain.CurrencyCoins,
			Amount:    -tier.CoinCost,
			Meta:      map[string]interface{}{"track": string(track), "tier": targetTier},
		})
		if err != nil {
			return nil, err
		}
	}
	if tier.TokenCost > 0 {
		tokens, err = s.accounts.DebitTokensTx(ctx, tx, accountID, tier.TokenCost)
		if err != nil {
			return nil, err
		}
		err = s.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
			AccountID: accountID,
			Type:      "upgrade_purchase",
			Currency:  domain.CurrencyTokens,
			Amount:    -tier.TokenCost,
			Meta:      map[string]interface{}{"track": string(track), "tier": targetTier},
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.accounts.SetUpgradeLevelTx(ctx, tx, accountID, column, targetTier); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Track:     track,
		NewLevel:  targetTier,
		CoinCost:  tier.CoinCost,
		TokenCost: tier.TokenCost,
		Coins:     coins,
		Tokens:    tokens,
	}, nil
}
