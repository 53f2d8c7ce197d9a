package repository

import (
	"context"
	"errors"
	"time"

	"whalebux_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, tg_id, COALESCE(username, ''), COALESCE(first_name, ''),
	coins, tokens, experience, level, rate_level, boost_level, time_level,
	vip_tier, vip_expires_at, COALESCE(referral_code, ''), referred_by, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.TgID, &a.Username, &a.FirstName,
		&a.Coins, &a.Tokens, &a.Experience, &a.Level,
		&a.RateLevel, &a.BoostLevel, &a.TimeLevel,
		&a.VIPTier, &a.VIPExpiresAt, &a.ReferralCode, &a.ReferredBy, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
}

func (r *AccountRepository) GetByTgID(ctx context.Context, tgID int64) (*domain.Account, error) {
	return scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE tg_id = $1`, tgID))
}

// GetByIDForUpdate locks the ledger row for the lifetime of tx. Every
// read-modify-write cycle goes through this so two operations against
// the same account can never interleave.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Account, error) {
	return scanAccount(tx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id))
}

// Create inserts a fresh ledger with the reference starting balances
// (coins/tokens/experience defaults live in the schema).
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO accounts (tg_id, username, first_name)
		 VALUES ($1, $2, $3)
		 RETURNING `+accountColumns,
		a.TgID, a.Username, a.FirstName,
	).Scan(
		&a.ID, &a.TgID, &a.Username, &a.FirstName,
		&a.Coins, &a.Tokens, &a.Experience, &a.Level,
		&a.RateLevel, &a.BoostLevel, &a.TimeLevel,
		&a.VIPTier, &a.VIPExpiresAt, &a.ReferralCode, &a.ReferredBy, &a.CreatedAt,
	)
}

// CreditCoinsTx adds coins inside an open transaction.
func (r *AccountRepository) CreditCoinsTx(ctx context.Context, tx pgx.Tx, id, amount int64) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx,
		`UPDATE accounts SET coins = coins + $1 WHERE id = $2 RETURNING coins`,
		amount, id,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return balance, err
}

// DebitCoinsTx deducts coins, refusing to go negative. The balance
// guard is in the WHERE clause so there is never a partial debit.
func (r *AccountRepository) DebitCoinsTx(ctx context.Context, tx pgx.Tx, id, amount int64) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx,
		`UPDATE accounts SET coins = coins - $1 WHERE id = $2 AND coins >= $1 RETURNING coins`,
		amount, id,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrInsufficientFunds
	}
	return balance, err
}

// CreditTokensTx adds token units inside an open transaction.
func (r *AccountRepository) CreditTokensTx(ctx context.Context, tx pgx.Tx, id, units int64) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx,
		`UPDATE accounts SET tokens = tokens + $1 WHERE id = $2 RETURNING tokens`,
		units, id,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return balance, err
}

// DebitTokensTx deducts token units with the same no-underflow guard.
func (r *AccountRepository) DebitTokensTx(ctx context.Context, tx pgx.Tx, id, units int64) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx,
		`UPDATE accounts SET tokens = tokens - $1 WHERE id = $2 AND tokens >= $1 RETURNING tokens`,
		units, id,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrInsufficientFunds
	}
	return balance, err
}

// AddExperienceTx credits experience and returns the new total so the
// caller can re-derive the level in the same transaction.
func (r *AccountRepository) AddExperienceTx(ctx context.Context, tx pgx.Tx, id, xp int64) (int64, error) {
	var total int64
	err := tx.QueryRow(ctx,
		`UPDATE accounts SET experience = experience + $1 WHERE id = $2 RETURNING experience`,
		xp, id,
	).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return total, err
}

// SetLevelTx stores a re-derived level. Only the experience-mutation
// path calls this.
func (r *AccountRepository) SetLevelTx(ctx context.Context, tx pgx.Tx, id int64, level int) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET level = $1 WHERE id = $2`, level, id)
	return err
}

// SetUpgradeLevelTx writes the post-purchase tier for one track. The
// caller validated sequence and funds under the row lock.
func (r *AccountRepository) SetUpgradeLevelTx(ctx context.Context, tx pgx.Tx, id int64, column string, level int) error {
	q := `UPDATE accounts SET ` + column + ` = $1 WHERE id = $2`
	_, err := tx.Exec(ctx, q, level, id)
	return err
}

// GrantUpgradeLevelTx bumps a track by one, capped at the catalog max.
// Reward grants use this path and deliberately skip the sequential
// purchase gate - a grant is a level increment, not a purchase.
func (r *AccountRepository) GrantUpgradeLevelTx(ctx context.Context, tx pgx.Tx, id int64, column string) (int, error) {
	var level int
	q := `UPDATE accounts SET ` + column + ` = LEAST(` + column + ` + 1, 9) WHERE id = $1 RETURNING ` + column
	err := tx.QueryRow(ctx, q, id).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return level, err
}

// SetVIPTx records a purchased membership.
func (r *AccountRepository) SetVIPTx(ctx context.Context, tx pgx.Tx, id int64, tier int, expiresAt time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE accounts SET vip_tier = $1, vip_expires_at = $2 WHERE id = $3`,
		tier, expiresAt, id,
	)
	return err
}

// RankedAccount is one leaderboard row.
type RankedAccount struct {
	Rank      int    `json:"rank"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Level     int    `json:"level"`
	Coins     int64  `json:"coins"`
}

// TopByCoins returns the richest miners.
func (r *AccountRepository) TopByCoins(ctx context.Context, limit int) ([]RankedAccount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(username, ''), COALESCE(first_name, ''), level, coins
		 FROM accounts
		 ORDER BY coins DESC, id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []RankedAccount
	rank := 1
	for rows.Next() {
		var a RankedAccount
		if err := rows.Scan(&a.ID, &a.Username, &a.FirstName, &a.Level, &a.Coins); err != nil {
			return nil, err
		}
		a.Rank = rank
		rank++
		res = append(res, a)
	}
	return res, rows.Err()
}

// RankByCoins returns one account's position on the coin leaderboard.
func (r *AccountRepository) RankByCoins(ctx context.Context, id int64) (int, int64, error) {
	var rank int
	var coins int64
	err := r.db.QueryRow(ctx, `
		WITH ranked AS (
			SELECT id, coins, RANK() OVER (ORDER BY coins DESC) AS rank
			FROM accounts
		)
		SELECT rank, coins FROM ranked WHERE id = $1`, id).Scan(&rank, &coins)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrNotFound
	}
	return rank, coins, err
}
