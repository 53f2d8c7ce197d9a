package repository

import (
	"context"
	"errors"

	"whalebux_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoSession - the account has no persisted mining run (Idle).
var ErrNoSession = errors.New("no mining session")

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `account_id, started_at, ends_at, duration_seconds,
	rate_per_hour, boost_percent, potential_earnings`

func scanSession(row pgx.Row) (*domain.MiningSession, error) {
	var s domain.MiningSession
	err := row.Scan(
		&s.AccountID, &s.StartedAt, &s.EndsAt,
		&s.Params.DurationSeconds, &s.Params.RatePerHour,
		&s.Params.BoostPercent, &s.Params.PotentialEarnings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &s, nil
}

// Get returns the persisted session snapshot, or ErrNoSession.
func (r *SessionRepository) Get(ctx context.Context, accountID int64) (*domain.MiningSession, error) {
	return scanSession(r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM mining_sessions WHERE account_id = $1`, accountID))
}

// GetForUpdate locks the session row within tx; claim and start use
// this so a double-claim race cannot pay out twice.
func (r *SessionRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.MiningSession, error) {
	return scanSession(tx.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM mining_sessions WHERE account_id = $1 FOR UPDATE`, accountID))
}

// CreateTx persists the frozen snapshot taken at session start. The
// primary key on account_id enforces the one-session rule.
func (r *SessionRepository) CreateTx(ctx context.Context, tx pgx.Tx, s *domain.MiningSession) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO mining_sessions
		 (account_id, started_at, ends_at, duration_seconds, rate_per_hour, boost_percent, potential_earnings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.AccountID, s.StartedAt, s.EndsAt,
		s.Params.DurationSeconds, s.Params.RatePerHour,
		s.Params.BoostPercent, s.Params.PotentialEarnings,
	)
	return err
}

// DeleteTx removes the session on claim, returning the account to Idle.
func (r *SessionRepository) DeleteTx(ctx context.Context, tx pgx.Tx, accountID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM mining_sessions WHERE account_id = $1`, accountID)
	return err
}
