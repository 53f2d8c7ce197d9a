package service

import (
	"context"
	"errors"
	"fmt"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
)

// ErrUnknownRewardKind - a descriptor carried a kind ApplyRewardTx does
// not match. Designer tables are validated at definition, so hitting
// this means corrupted data, not user error.
var ErrUnknownRewardKind = errors.New("unknown reward kind")

// rewardApplier applies a reward descriptor to the ledger inside an
// open transaction. The daily-login calendar and the referral ladder
// share this single mutator so a reward means the same thing no matter
// which schedule granted it.
type rewardApplier struct {
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
}

// applyTx matches the descriptor exhaustively. Upgrade kinds grant one
// level directly (capped at the catalog max) and skip the sequential
// purchase gate; the amount on those is display data only.
func (a *rewardApplier) applyTx(ctx context.Context, tx pgx.Tx, accountID int64, rw domain.Reward, source string) error {
	switch rw.Kind {
	case domain.RewardCoins:
		if _, err := a.accounts.CreditCoinsTx(ctx, tx, accountID, rw.Amount); err != nil {
			return err
		}
		return a.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
			AccountID: accountID,
			Type:      source,
			Currency:  domain.CurrencyCoins,
			Amount:    rw.Amount,
		})

	case domain.RewardTokens:
		if _, err := a.accounts.CreditTokensTx(ctx, tx, accountID, rw.Amount); err != nil {
			return err
		}
		return a.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
			AccountID: accountID,
			Type:      source,
			Currency:  domain.CurrencyTokens,
			Amount:    rw.Amount,
		})

	case domain.RewardBoostLevel:
		_, err := a.accounts.GrantUpgradeLevelTx(ctx, tx, accountID, "boost_level")
		return err

	case domain.RewardRateLevel:
		_, err := a.accounts.GrantUpgradeLevelTx(ctx, tx, accountID, "rate_level")
		return err

	case domain.RewardTimeLevel:
		_, err := a.accounts.GrantUpgradeLevelTx(ctx, tx, accountID, "time_level")
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownRewardKind, rw.Kind)
}
